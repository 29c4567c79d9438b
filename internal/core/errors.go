package core

import "errors"

// Sentinel reasons for rejected imports.
var (
	ErrEmptyPayload      = errors.New("nothing to import")
	ErrMalformedPayload  = errors.New("import data is malformed")
	ErrUnsupportedFormat = errors.New("unsupported import format")
	ErrUnknownRoute      = errors.New("unknown route")
	ErrNoData            = errors.New("import data contains no locations or routes")
)

// ImportValidationError is the one user-visible error kind. Its message is
// shown verbatim under the import text area.
type ImportValidationError struct {
	Reason error
	Detail string
}

func (e *ImportValidationError) Error() string {
	if e.Detail == "" {
		return e.Reason.Error()
	}
	return e.Reason.Error() + ": " + e.Detail
}

func (e *ImportValidationError) Unwrap() error { return e.Reason }

func invalid(reason error, detail string) error {
	return &ImportValidationError{Reason: reason, Detail: detail}
}
