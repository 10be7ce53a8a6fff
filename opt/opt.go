// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package opt implements a generic optional value.
package opt

import (
	"fmt"

	"go.astrophena.name/optthrow/unwrap"
)

// Option holds either exactly one value of type T or nothing.
//
// The zero value is None. Some(nil) is present for types that accept nil.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// FromOk returns Some(v) if ok is true and None otherwise. It matches Go's
// comma-ok idiom.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the held value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// Unwrap returns the held value, or [unwrap.ErrAbsent] if o is empty.
func (o Option[T]) Unwrap() (T, error) { return unwrap.OK(o.value, o.ok) }

// Must returns the held value. If o is empty it aborts the enclosing
// [unwrap.Do], which then reports [unwrap.ErrAbsent].
func (o Option[T]) Must() T { return unwrap.Get(o.value, o.ok) }

// Or returns the held value, or fallback if o is empty.
func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Ptr returns a pointer to a copy of the held value, or nil if o is empty.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// String implements [fmt.Stringer].
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the held value.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f to the held value and returns its result.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// Map2 calls f with both held values. It returns None if either is empty.
func Map2[A, B, R any](a Option[A], b Option[B], f func(A, B) R) Option[R] {
	if !a.ok || !b.ok {
		return None[R]()
	}
	return Some(f(a.value, b.value))
}

// Map3 calls f with all three held values. It returns None if any is empty.
func Map3[A, B, C, R any](a Option[A], b Option[B], c Option[C], f func(A, B, C) R) Option[R] {
	if !a.ok || !b.ok || !c.ok {
		return None[R]()
	}
	return Some(f(a.value, b.value, c.value))
}
