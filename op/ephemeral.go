// Package op: ephemeral terminal prototype and instances.
package op

import (
	"errors"
	"fmt"

	"github.com/malvaren/gentree/lazy"
)

// ErrNilSupplier is returned when a constructor is given a nil supplier.
var ErrNilSupplier = errors.New("op: nil supplier")

// Ephemeral is an ephemeral terminal: an optional name, a once-only value
// cell, and the originating supplier kept to produce further fresh
// instances. The value constructed first is the prototype; Instantiate
// yields one independent instance per terminal occurrence.
type Ephemeral[T any] struct {
	name     string
	cell     *lazy.Cell[T]
	supplier func() T
}

// NewEphemeral returns an unnamed ephemeral terminal prototype over
// supplier, or ErrNilSupplier.
func NewEphemeral[T any](supplier func() T) (*Ephemeral[T], error) {
	return NewNamedEphemeral("", supplier)
}

// NewNamedEphemeral returns an ephemeral terminal prototype with the given
// name over supplier, or ErrNilSupplier. An empty name means unnamed.
func NewNamedEphemeral[T any](name string, supplier func() T) (*Ephemeral[T], error) {
	if supplier == nil {
		return nil, ErrNilSupplier
	}
	cell, err := lazy.New(supplier)
	if err != nil {
		return nil, err
	}
	return &Ephemeral[T]{name: name, cell: cell, supplier: supplier}, nil
}

// Name returns the terminal's name; empty for unnamed terminals.
func (e *Ephemeral[T]) Name() string { return e.name }

// Instantiate returns a new instance sharing this terminal's name and
// supplier but with a fresh, unrealized cell — a new occurrence whose
// value will be fixed independently once read.
func (e *Ephemeral[T]) Instantiate() *Ephemeral[T] {
	cell, _ := lazy.New(e.supplier) // supplier is non-nil by construction
	return &Ephemeral[T]{name: e.name, cell: cell, supplier: e.supplier}
}

// Value fixes and returns this occurrence's constant. The first call
// realizes it; every later call returns the same value.
func (e *Ephemeral[T]) Value() T {
	return e.cell.Get()
}

// String renders "name(value)" when named, otherwise the value alone.
// Rendering forces realization.
func (e *Ephemeral[T]) String() string {
	if e.name != "" {
		return fmt.Sprintf("%s(%v)", e.name, e.Value())
	}
	return fmt.Sprint(e.Value())
}
