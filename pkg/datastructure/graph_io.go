package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"go.uber.org/multierr"
)

// WriteGraph stores the graph as a bzip2 compressed text file.
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	return g.writeCompressed(f)
}

// writeCompressed closes out in every case, a failed close is reported like a failed write.
func (g *Graph) writeCompressed(out io.WriteCloser) (err error) {
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	bz, err := bzip2.NewWriter(out, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := g.WriteGraphTo(bz); err != nil {
		return multierr.Append(err, bz.Close())
	}
	return bz.Close()
}

// WriteGraphTo writes the text form of the graph:
//
//	numVertices numSetVertices numUndirectedEdges
//	id lat lon "name"            (one line per set vertex)
//	tail head                    (one line per undirected edge)
//
// weights are not stored, they are derived again from the coordinates on read.
func (g *Graph) WriteGraphTo(out io.Writer) error {
	w := bufio.NewWriter(out)

	ids := g.GetVerticeIds()
	fmt.Fprintf(w, "%d %d %d\n", len(g.vertices), len(ids), len(g.edges)/2)

	for _, id := range ids {
		v := g.vertices[id]
		latF := strconv.FormatFloat(v.GetLat(), 'f', -1, 64)
		lonF := strconv.FormatFloat(v.GetLon(), 'f', -1, 64)

		fmt.Fprintf(w, "%d %s %s %s\n", id, latF, lonF, strconv.Quote(v.name))
	}

	// edges come in mirrored pairs, the first record of each pair keeps the original direction
	for i := 0; i < len(g.edges); i += 2 {
		e := g.edges[i]
		fmt.Fprintf(w, "%d %d\n", e.tail, e.head)
	}

	return w.Flush()
}

func fields(s string) []string {
	return strings.Fields(s)
}

func parseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u >= math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}

// ReadGraph reads a graph written by WriteGraph.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return ReadGraphFrom(bz)
}

// ReadGraphFrom parses the text form produced by WriteGraphTo. the graph is rebuilt through
// AddVertex and AddEdge so every capacity and coordinate check applies.
func ReadGraphFrom(in io.Reader) (*Graph, error) {
	br := bufio.NewReader(in)

	readLine := func() (string, error) {
		line, err := br.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}

	tokens := fields(line)
	if len(tokens) != 3 {
		return nil, fmt.Errorf("expected 3 header fields, got %d", len(tokens))
	}

	counts := make([]Index, 3)
	for i, token := range tokens {
		counts[i], err = parseIndex(token)
		if err != nil {
			return nil, err
		}
	}
	numVertices, numSetVertices, numEdges := counts[0], counts[1], counts[2]

	g, err := NewGraph(int(numVertices))
	if err != nil {
		return nil, err
	}

	for i := 0; i < int(numSetVertices); i++ {
		vertexLine, err := readLine()
		if err != nil {
			return nil, err
		}
		if err := parseVertex(g, vertexLine); err != nil {
			return nil, err
		}
	}

	for i := 0; i < int(numEdges); i++ {
		edgeLine, err := readLine()
		if err != nil {
			return nil, err
		}
		tokens = fields(edgeLine)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("expected 2 edge fields, got %d", len(tokens))
		}
		tail, err := parseIndex(tokens[0])
		if err != nil {
			return nil, err
		}
		head, err := parseIndex(tokens[1])
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(tail, head); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func parseVertex(g *Graph, line string) error {
	tokens := strings.SplitN(line, " ", 4)
	if len(tokens) != 4 {
		return fmt.Errorf("expected 4 vertex fields, got %d", len(tokens))
	}

	id, err := parseIndex(tokens[0])
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return err
	}
	lon, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return err
	}
	name, err := strconv.Unquote(tokens[3])
	if err != nil {
		return fmt.Errorf("vertex %d name: %w", id, err)
	}

	return g.AddVertex(id, lat, lon, name)
}
