// Package ndconfig loads named Array fixtures from YAML, mirroring the
// teacher's own program/default.go convention of loading named kernels
// from an embedded YAML document instead of hand-writing Go literals.
package ndconfig

import (
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/ndarray"
	"github.com/sarchlab/dycg/shape"
)

// Fixture is one named Array literal: a shape and its flat row-major
// values.
type Fixture struct {
	Name   string    `yaml:"name"`
	Dims   []uint64  `yaml:"dims"`
	Values []float32 `yaml:"values"`
}

// Document is a named collection of Fixtures, as loaded from a single
// YAML document.
type Document struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// Parse decodes a YAML document of Fixtures.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errs.Wrap(errs.NotSupported, err, "ndconfig: failed to parse fixture document")
	}

	return doc, nil
}

// Build materializes every Fixture in doc as an Array on hw, keyed by
// name. It returns InvalidLength if a Fixture's Values don't match its
// Dims.
func Build(hw hardware.Hardware, doc Document) (map[string]*array.Array, error) {
	out := make(map[string]*array.Array, len(doc.Fixtures))

	for _, f := range doc.Fixtures {
		s, err := shape.FromSlice(f.Dims)
		if err != nil {
			releaseAll(out)
			return nil, err
		}

		a, err := ndarray.FromFlat(hw, s, f.Values)
		if err != nil {
			releaseAll(out)
			return nil, err
		}

		out[f.Name] = a
	}

	return out, nil
}

func releaseAll(arrays map[string]*array.Array) {
	for _, a := range arrays {
		a.Release()
	}
}
