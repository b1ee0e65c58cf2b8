package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error for the caller
type Kind int

const (
	Internal Kind = iota
	Unauthenticated
	Unauthorized
	Validation
	StateConflict
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case Unauthorized:
		return "unauthorized"
	case Validation:
		return "validation"
	case StateConflict:
		return "state_conflict"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a domain error with a stable numeric code
type Error struct {
	kind    Kind
	code    int64
	message string
}

// New returns a domain error. It is meant to be declared once as a package level sentinel.
func New(kind Kind, code int64, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Code() int64 {
	return e.code
}

// ValidationError carries field level detail of a rejected input
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Fields collects field errors and turns them into a ValidationError
type Fields map[string]string

// Add records the first problem seen for a field
func (f Fields) Add(field, problem string) {
	if _, ok := f[field]; !ok {
		f[field] = problem
	}
}

// Err returns nil when no field failed
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// Invalid is a shortcut for a single field ValidationError
func Invalid(field, problem string) error {
	return &ValidationError{Fields: map[string]string{field: problem}}
}

// KindOf resolves the kind of any error in a chain
func KindOf(err error) Kind {
	if err == nil {
		return Internal
	}

	var v *ValidationError
	if errors.As(err, &v) {
		return Validation
	}

	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return Internal
}

// Is reports whether err is of the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
