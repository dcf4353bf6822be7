package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinels for errors.Is checks across the error taxonomy.
var (
	ErrValidation = errors.New("validation failed")
	ErrTransport  = errors.New("transport failure")
	ErrServer     = errors.New("server rejected request")
)

// ValidationError lists required fields that were blank. It is raised before
// any request is issued.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s is required", e.Fields[0])
	}
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TransportError means the request/response exchange did not complete.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ServerError carries a non-2xx status and the backend's error text.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, msg)
}

func (e *ServerError) Is(target error) bool { return target == ErrServer }

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}
