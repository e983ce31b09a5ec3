package xmldoc

import (
	"encoding/xml"
	"io"
	"os"
)

// Write serialises v to filename, creating or truncating it. A file that
// could not be written completely is removed again.
func Write(v interface{}, filename string) (err error) {
	op, err := os.Create(filename)
	if err != nil {
		return &Error{Op: "write", Path: filename, Reason: ReasonCreate, Err: err}
	}
	defer func() {
		cerr := op.Close()
		if err == nil && cerr != nil {
			err = &Error{Op: "write", Path: filename, Reason: ReasonCreate, Err: cerr}
		}
		if err != nil {
			os.Remove(filename)
		}
	}()

	if err := Encode(op, v); err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = filename
		}
		return err
	}

	return nil
}

// Encode writes v as an indented XML document, including the XML declaration
func Encode(w io.Writer, v interface{}) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return &Error{Op: "encode", Reason: ReasonEncode, Err: err}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "	")
	if err := enc.Encode(v); err != nil {
		return &Error{Op: "encode", Reason: ReasonEncode, Err: err}
	}
	if err := enc.Flush(); err != nil {
		return &Error{Op: "encode", Reason: ReasonEncode, Err: err}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return &Error{Op: "encode", Reason: ReasonEncode, Err: err}
	}
	return nil
}
