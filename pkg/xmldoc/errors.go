package xmldoc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A Reason classifies why reading or writing a document failed
type Reason int

const (
	// ReasonOpen means the file could not be opened or read
	ReasonOpen Reason = iota + 1
	// ReasonMalformed means the file is not well-formed XML
	ReasonMalformed
	// ReasonInvalid means the document does not conform to its schema
	ReasonInvalid
	// ReasonSchema means the bundled schema itself could not be used
	ReasonSchema
	// ReasonDecode means the document could not be mapped onto the document model
	ReasonDecode
	// ReasonCreate means the output file could not be created or closed
	ReasonCreate
	// ReasonEncode means the document could not be serialised
	ReasonEncode
)

var (
	ErrOpen      = errors.New("cannot read file")
	ErrMalformed = errors.New("malformed XML")
	ErrInvalid   = errors.New("schema violation")
	ErrSchema    = errors.New("unusable schema")
	ErrDecode    = errors.New("cannot decode document")
	ErrCreate    = errors.New("cannot write file")
	ErrEncode    = errors.New("cannot encode document")
)

var sentinels = map[Reason]error{
	ReasonOpen:      ErrOpen,
	ReasonMalformed: ErrMalformed,
	ReasonInvalid:   ErrInvalid,
	ReasonSchema:    ErrSchema,
	ReasonDecode:    ErrDecode,
	ReasonCreate:    ErrCreate,
	ReasonEncode:    ErrEncode,
}

func (r Reason) String() string {
	if e, ok := sentinels[r]; ok {
		return e.Error()
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// An Error records a failed read or write, and the file it happened to.
// Path is empty for documents that were never backed by a file.
type Error struct {
	Op     string
	Path   string
	Reason Reason
	Err    error

	// Individual schema violations, if applicable
	Details []string
}

func (e *Error) Error() string {
	rv := e.Op
	if e.Path != "" {
		rv += " " + e.Path
	}
	rv += ": " + e.Reason.String()
	if e.Err != nil {
		rv += ": " + e.Err.Error()
	}
	if len(e.Details) > 0 {
		rv += "\n\t" + strings.Join(e.Details, "\n\t")
	}
	return rv
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for this error's Reason
func (e *Error) Is(target error) bool {
	return target != nil && sentinels[e.Reason] == target
}

// ReasonOf extracts the Reason from an error returned by this package, or 0
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return 0
}
