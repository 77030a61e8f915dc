package readlater

import "errors"

// Operation names carried by OpError.
const (
	OpLoad   = "load bookmarks"
	OpSave   = "save tab"
	OpRemove = "remove bookmark"
	OpImport = "import bookmarks"
	OpVisit  = "record visit"
)

var (
	ErrNoActiveTab   = errors.New("no active tab")
	ErrRelativeLabel = errors.New("relative day label has no fixed date")
)

// OpError is the single failure kind surfaced to the user: an operation name
// plus the underlying cause.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func wrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Err: err}
}
