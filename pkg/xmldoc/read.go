// Package xmldoc reads and writes XML documents, validating input against the
// schemas bundled in package schema.
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/lestrrat-go/libxml2"
	"github.com/pkg/errors"
	"github.com/thijzert/slf2gpx/lib/zipmap"
	"github.com/thijzert/slf2gpx/pkg/gpx"
	"github.com/thijzert/slf2gpx/pkg/schema"
	"github.com/thijzert/slf2gpx/pkg/slf"
	"golang.org/x/text/encoding/ianaindex"
)

// ReadActivity reads an SLF file
func ReadActivity(filename string) (*slf.Activity, error) {
	rv := &slf.Activity{}
	if err := Read(filename, schema.SLF, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// ReadGPX reads a GPX file
func ReadGPX(filename string) (*gpx.GPX, error) {
	rv := &gpx.GPX{}
	if err := Read(filename, schema.GPX, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Read loads the XML document at filename into v. Files inside zip archives
// may be addressed as "path/to/archive.zip/member". If a schema is bundled
// for kind, the document must validate against it before it is decoded.
// All failures are returned as an *Error.
func Read(filename string, kind schema.Kind, v interface{}) error {
	zm := zipmap.New()
	defer zm.Close()

	f, err := zm.Open(filename)
	if err != nil {
		return &Error{Op: "read", Path: filename, Reason: ReasonOpen, Err: err}
	}
	b, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return &Error{Op: "read", Path: filename, Reason: ReasonOpen, Err: err}
	}

	if err := Decode(b, kind, v); err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = filename
		}
		return err
	}
	return nil
}

// Decode validates and decodes an in-memory document. See Read.
func Decode(b []byte, kind schema.Kind, v interface{}) error {
	if err := validate(b, kind); err != nil {
		return err
	}

	d := xml.NewDecoder(bytes.NewReader(b))
	d.CharsetReader = charsetReader
	if err := d.Decode(v); err != nil {
		reason := ReasonDecode
		var serr *xml.SyntaxError
		if errors.As(err, &serr) || errors.Is(err, io.EOF) {
			reason = ReasonMalformed
		}
		return &Error{Op: "decode", Reason: reason, Err: err}
	}
	return nil
}

func validate(b []byte, kind schema.Kind) error {
	s, ok, err := schema.Compile(kind)
	if !ok {
		return nil
	}
	if err != nil {
		return &Error{Op: "validate", Reason: ReasonSchema, Err: err}
	}
	defer s.Free()

	doc, err := libxml2.Parse(b)
	if err != nil {
		return &Error{Op: "parse", Reason: ReasonMalformed, Err: err}
	}
	defer doc.Free()

	if err := s.Validate(doc); err != nil {
		rv := &Error{Op: "validate", Reason: ReasonInvalid, Err: err}
		if verr, ok := err.(interface{ Errors() []error }); ok {
			for _, e := range verr.Errors() {
				rv.Details = append(rv.Details, e.Error())
			}
		}
		return rv
	}
	return nil
}

// charsetReader lets encoding/xml read documents that declare a legacy encoding
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown charset '%s'", label)
	}
	if enc == nil {
		return nil, errors.Errorf("unsupported charset '%s'", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
