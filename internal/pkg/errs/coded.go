package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Category groups application errors by how a caller is expected to react.
type Category string

const (
	CategoryValidation   Category = "validation"
	CategoryConflict     Category = "conflict"
	CategoryNotFound     Category = "not_found"
	CategoryForbidden    Category = "forbidden"
	CategoryUnauthorized Category = "unauthorized"
	CategoryExpired      Category = "expired"
	CategoryDependency   Category = "dependency"
	CategoryInternal     Category = "internal"
)

const CodeInternal = "INTERNAL_ERROR"

// Coded is a sentinel carrying a stable machine-readable code.
// Compare with errors.Is; wrap with Wrap to add context without losing the code.
type Coded struct {
	category Category
	code     string
	message  string
}

func (e *Coded) Error() string      { return e.message }
func (e *Coded) Code() string       { return e.code }
func (e *Coded) Category() Category { return e.category }

func define(category Category, code, message string) *Coded {
	return &Coded{category: category, code: code, message: message}
}

func Validation(code, message string) *Coded   { return define(CategoryValidation, code, message) }
func Conflict(code, message string) *Coded     { return define(CategoryConflict, code, message) }
func NotFound(code, message string) *Coded     { return define(CategoryNotFound, code, message) }
func Forbidden(code, message string) *Coded    { return define(CategoryForbidden, code, message) }
func Unauthorized(code, message string) *Coded { return define(CategoryUnauthorized, code, message) }
func Expired(code, message string) *Coded      { return define(CategoryExpired, code, message) }
func Dependency(code, message string) *Coded   { return define(CategoryDependency, code, message) }

// Classify returns the outermost Coded error in the chain.
func Classify(err error) (*Coded, bool) {
	if err == nil {
		return nil, false
	}
	var coded *Coded
	if cr.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// WithCause keeps coded as the matchable error and records cause for logs.
func WithCause(coded *Coded, cause error) error {
	if cause == nil {
		return coded
	}
	return cr.WithSecondaryError(cr.WithStack(coded), cause)
}
