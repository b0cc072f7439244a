// Package model defines the persisted records managed by keep and the
// contract every record type satisfies.
package model

import "fmt"

// DataModel is satisfied by a pointer to a record type T that can reset
// itself to canonical defaults.
//
// T must be a plain value: no slices, maps or pointers, so that copies of
// a record never share mutable state.
type DataModel[T any] interface {
	*T
	SetDefaultData()
}

// Default returns the zero value of T, before any defaults are applied.
func Default[T any]() T {
	var v T
	return v
}

// NewDefault returns a T with SetDefaultData applied.
func NewDefault[T any, PT DataModel[T]]() T {
	v := Default[T]()
	PT(&v).SetDefaultData()
	return v
}

// Field is a single named field of a record, rendered as text.
type Field struct {
	Name  string
	Value string
}

// FieldError indicates a field could not be set on a record.
type FieldError struct {
	Record  string // record type, e.g. "profile"
	Field   string // field name as given by the caller
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Record, e.Field, e.Message)
}
