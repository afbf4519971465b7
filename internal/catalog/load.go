package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// referenceYAML is the bundled HTML reference, embedded at build time.
//
//go:embed data/html.yaml
var referenceYAML []byte

type document struct {
	All        string      `yaml:"all"`
	Categories []string    `yaml:"categories"`
	Tags       []TagRecord `yaml:"tags"`
}

// Reference returns the bundled HTML reference catalog.
func Reference() (*Catalog, error) {
	c, err := Decode(bytes.NewReader(referenceYAML))
	if err != nil {
		return nil, fmt.Errorf("bundled catalog: %w", err)
	}
	return c, nil
}

// MustReference is Reference for package-level initialisation and tests. The
// bundled data is validated by the test suite, so a failure here is a build defect.
func MustReference() *Catalog {
	c, err := Reference()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	c, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the bundled reference when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Reference()
	}
	return LoadFile(path)
}

// Decode parses a YAML catalog document and validates it.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode catalog: document is empty")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.All, doc.Categories, doc.Tags)
}
