package response

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error is the error type returned by the repository and services.
type Error struct {
	Code   ErrCode
	Entity string
	ID     string
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(GetMessage(e.Code))
	if e.Entity != "" {
		b.WriteString(" (")
		b.WriteString(e.Entity)
		if e.ID != "" {
			b.WriteString(" ")
			b.WriteString(e.ID)
		}
		b.WriteString(")")
	}
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		fmt.Fprintf(&b, "; %s: %s", k, e.Fields[k])
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same code, so errors.Is(err, response.NotFound("", ""))
// works regardless of entity or id.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code carried by err, ErrInternal for foreign errors and "" for nil.
func CodeOf(err error) ErrCode {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrInternal
}

// New builds an *Error with the given code.
func New(code ErrCode, entity, id string) *Error {
	return &Error{Code: code, Entity: entity, ID: id}
}

// NotFound reports a missing entity.
func NotFound(entity, id string) *Error { return New(ErrNotFound, entity, id) }

// DuplicateID reports an id collision.
func DuplicateID(entity, id string) *Error { return New(ErrDuplicateID, entity, id) }

// OutOfRange reports a score outside [0, 100].
func OutOfRange(score int) *Error {
	return &Error{Code: ErrOutOfRange, Fields: map[string]string{"score": fmt.Sprint(score)}}
}

// ReferenceMissing reports a reference to an entity that does not exist.
func ReferenceMissing(entity, id string) *Error { return New(ErrReferenceMissing, entity, id) }

// Cancelled reports a declined confirmation.
func Cancelled(entity, id string) *Error { return New(ErrCancelled, entity, id) }

// Validation wraps translated field errors.
func Validation(fields map[string]string) *Error {
	return &Error{Code: ErrValidation, Fields: fields}
}

// Persistence wraps a failed save.
func Persistence(err error) *Error { return &Error{Code: ErrPersistence, Err: err} }

// LoadFailed wraps a failed load.
func LoadFailed(err error) *Error { return &Error{Code: ErrLoadFailed, Err: err} }

// Internal wraps an unexpected error.
func Internal(err error) *Error { return &Error{Code: ErrInternal, Err: err} }
