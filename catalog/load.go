package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed data/vegetables.yaml
var builtin []byte

// document is the on-disk shape shared by the YAML and TOML formats.
type document struct {
	Vegetables []Vegetable `yaml:"vegetables" toml:"vegetables"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return FromYAML(bytes.NewReader(builtin))
})

// Default returns the built-in catalog. It is decoded once and shared.
// Panics if the embedded table is invalid, which is a build defect.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in table: %v", err))
	}
	return c
}

// FromYAML decodes a `vegetables:` document and builds a Catalog.
// Unknown fields are rejected.
func FromYAML(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decoding yaml: %w", err)
	}
	return New(doc.Vegetables)
}

// FromTOML decodes a document of `[[vegetables]]` tables and builds a Catalog.
// Unknown fields are rejected.
func FromTOML(r io.Reader) (*Catalog, error) {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decoding toml: %w", err)
	}
	return New(doc.Vegetables)
}

// Open reads a catalog file, choosing the decoder by extension
// (.yaml, .yml or .toml).
func Open(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(f)
	case ".toml":
		return FromTOML(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}
