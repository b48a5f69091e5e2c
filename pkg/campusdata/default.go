package campusdata

import (
	"bytes"
	_ "embed"

	"go.uber.org/zap"
)

//go:embed hust.yaml
var hustYAML []byte

// DefaultDataset returns the built-in HUST campus.
func DefaultDataset() (*Dataset, error) {
	return ParseYAML(bytes.NewReader(hustYAML))
}

// LoadDefault builds the built-in HUST campus.
func LoadDefault(logger *zap.Logger) (*Campus, error) {
	ds, err := DefaultDataset()
	if err != nil {
		return nil, err
	}
	return ds.Build(logger)
}
