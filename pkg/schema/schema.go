// Package schema bundles the XSD documents that govern the files slf2gpx
// reads, and compiles them for validation.
package schema

import (
	_ "embed"

	"github.com/lestrrat-go/libxml2/xsd"
	"github.com/pkg/errors"
)

// A Kind designates which schema governs a document
type Kind int

const (
	// SLF is the activity log format written by ski and bike computers
	SLF Kind = iota + 1
	// GPX is GPS Exchange Format, version 1.1
	GPX
)

func (k Kind) String() string {
	switch k {
	case SLF:
		return "slf"
	case GPX:
		return "gpx"
	}
	return "unknown"
}

// Extension returns the file name extension for documents of this kind, including the dot.
func (k Kind) Extension() string {
	return "." + k.String()
}

var (
	//go:embed slf.xsd
	slfSchema []byte

	//go:embed gpx.xsd
	gpxSchema []byte
)

var bundled = map[Kind][]byte{
	SLF: slfSchema,
	GPX: gpxSchema,
}

// Lookup returns the XSD document bundled for this kind, if there is one.
// The returned slice is shared; do not modify it.
func Lookup(k Kind) ([]byte, bool) {
	b, ok := bundled[k]
	if !ok || len(b) == 0 {
		return nil, false
	}
	return b, true
}

// Compile parses the bundled schema for this kind. If no schema is bundled,
// Compile returns false and no error; documents of that kind are then read
// without validation. The caller must Free the schema.
func Compile(k Kind) (*xsd.Schema, bool, error) {
	b, ok := Lookup(k)
	if !ok {
		return nil, false, nil
	}

	s, err := xsd.Parse(b)
	if err != nil {
		return nil, true, errors.Wrapf(err, "bundled %s schema does not compile", k)
	}
	return s, true, nil
}
