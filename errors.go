package scn

import (
	"errors"
	"fmt"
)

// ShapeError reports a record whose array or object does not match its
// variant's shape contract: wrong arity, a missing required key, or a value
// of the wrong kind. Shape violations on recognized records are always
// fatal; they indicate a malformed document, not a forward-compatibility
// gap.
type ShapeError struct {
	Entity string // record family and tag, e.g. "event playvoice"
	Detail string // what was wrong, e.g. "want 9 elements, got 8"
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("scn: %s: %s", e.Entity, e.Detail)
}

// TagMismatchError reports a literal discriminator or inline key-name token
// that did not match the expected value. Several event shapes re-declare
// their field names inline; the codec refuses to trust the following value
// when the declared name is wrong.
type TagMismatchError struct {
	Entity string
	Pos    int    // array index of the offending token; -1 for object keys
	Want   string // expected literal
	Got    string // observed token (or a kind description)
}

func (e *TagMismatchError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("scn: %s: want %q, got %q", e.Entity, e.Want, e.Got)
	}
	return fmt.Sprintf("scn: %s: element %d: want %q, got %q", e.Entity, e.Pos, e.Want, e.Got)
}

// UnknownVariantError reports a discriminator absent from its family's
// registry in a position where no fallback exists. Only instructions raise
// it: events and snapshot objects fall back to passthrough variants instead.
type UnknownVariantError struct {
	Entity string
	Tag    string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("scn: %s: unknown tag %q", e.Entity, e.Tag)
}

func shapeErrf(entity, format string, args ...any) error {
	return &ShapeError{Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

// wrapf prefixes err with location context, preserving the typed error for
// errors.As. Contexts stack as the error propagates upward, yielding paths
// like "scene[2]: lines[14]: event playvoice: ...".
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf(fmt.Sprintf(format, args...)+": %w", err)
}

// typedErr reports whether err carries one of the codec's typed errors.
func typedErr(err error) bool {
	var (
		shape    *ShapeError
		mismatch *TagMismatchError
		unknown  *UnknownVariantError
	)
	return errors.As(err, &shape) || errors.As(err, &mismatch) || errors.As(err, &unknown)
}

// nestShape attaches entity and field context to an error from a nested
// decode. A typed error stays reachable through errors.As; an untyped
// accessor error becomes this site's ShapeError.
func nestShape(entity, field string, err error) error {
	if typedErr(err) {
		return wrapf(err, "%s: %s", entity, field)
	}
	return shapeErrf(entity, "%s: %v", field, err)
}

// arityErr builds the standard wrong-length ShapeError.
func arityErr(entity string, got int, want ...int) error {
	if len(want) == 1 {
		return shapeErrf(entity, "want %d elements, got %d", want[0], got)
	}
	return shapeErrf(entity, "want one of %v elements, got %d", want, got)
}
