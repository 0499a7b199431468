package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// wrapped ties an underlying cause to one of the Exception sentinels so that
// both stay reachable through errors.Is and errors.As.
type wrapped struct {
	kind  *Exception
	cause error
}

func (w *wrapped) Error() string {
	return w.kind.Message + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() []error {
	return []error{w.kind, w.cause}
}

func Wrap(kind *Exception, cause error) error {
	if cause == nil {
		return nil
	}
	return &wrapped{kind: kind, cause: cause}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message for err, hiding causes that
// are not Exceptions.
func Message(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
