package datastructure

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameGraph(t *testing.T, want, got *Graph) {
	t.Helper()
	require.Equal(t, want.NumberOfVertices(), got.NumberOfVertices())
	require.Equal(t, want.GetVerticeIds(), got.GetVerticeIds())
	for _, id := range want.GetVerticeIds() {
		assert.Equal(t, want.GetVertex(id), got.GetVertex(id))
	}
	require.Equal(t, want.NumberOfEdges(), got.NumberOfEdges())
	for i, e := range want.GetEdges() {
		assert.Equal(t, e, got.GetEdge(Index(i)))
	}
}

func TestWriteReadGraphText(t *testing.T) {
	g := lineGraph(t)
	require.NoError(t, g.AddVertex(3, 21.004421376697916, 105.84411155875196, "Thư viện \"TQB\""))
	require.NoError(t, g.AddEdge(3, 0))

	var buf bytes.Buffer
	require.NoError(t, g.WriteGraphTo(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "4 4 3\n"))

	got, err := ReadGraphFrom(&buf)
	require.NoError(t, err)
	assertSameGraph(t, g, got)
}

func TestWriteReadGraphBzip2(t *testing.T) {
	g := lineGraph(t)
	filename := filepath.Join(t.TempDir(), "campus.graph.bz2")

	require.NoError(t, g.WriteGraph(filename))
	got, err := ReadGraph(filename)
	require.NoError(t, err)
	assertSameGraph(t, g, got)
}

type failingCloser struct {
	bytes.Buffer
	err error
}

func (f *failingCloser) Close() error {
	return f.err
}

func TestWriteGraphReportsCloseError(t *testing.T) {
	g := lineGraph(t)
	errDiskFull := errors.New("disk full")

	out := &failingCloser{err: errDiskFull}
	assert.ErrorIs(t, g.writeCompressed(out), errDiskFull)
	assert.NotZero(t, out.Len())

	out = &failingCloser{}
	require.NoError(t, g.writeCompressed(out))
	got, err := ReadGraph(writeFile(t, out.Bytes()))
	require.NoError(t, err)
	assertSameGraph(t, g, got)
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "campus.graph.bz2")
	require.NoError(t, os.WriteFile(filename, data, 0644))
	return filename
}

func TestReadGraphFromErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"capacity", "51 0 0\n", ErrInvalidCapacity},
		{"vertex out of range", "2 1 0\n2 0 0 \"x\"\n", ErrIndexOutOfRange},
		{"bad coordinate", "2 1 0\n0 95 0 \"x\"\n", ErrInvalidCoordinate},
		{"edge to unset vertex", "2 1 1\n0 0 0 \"x\"\n0 1\n", ErrVertexNotSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGraphFrom(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ReadGraphFrom(strings.NewReader("1 2\n"))
	assert.Error(t, err)
	_, err = ReadGraphFrom(strings.NewReader("2 1 0\n0 0 0 unquoted\n"))
	assert.Error(t, err)
	_, err = ReadGraphFrom(strings.NewReader("2 2 0\n0 0 0 \"x\"\n"))
	assert.Error(t, err)
}
