// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package unwrap converts optional values into errors.
//
// Go has no single optional type. A value may be optional as a comma-ok pair
// (map lookups, type assertions) or as a pointer. [OK] and [Ptr] turn either
// form into a value or [ErrAbsent], so callers can use ordinary error
// handling instead of nested presence checks:
//
//	name, err := unwrap.Ptr(cfg.Name)
//	if err != nil {
//		return err
//	}
//
// Several optionals can also be combined in one expression. Inside [Do],
// [Get] and [Deref] return the value directly. The first absent value aborts
// the whole expression:
//
//	sum, err := unwrap.Do(func() int {
//		return unwrap.Deref(a) + unwrap.Deref(b)
//	})
package unwrap

// AbsentError is returned when an optional value holds nothing.
//
// It carries no payload. All AbsentError values are equal, so both
// errors.Is(err, ErrAbsent) and errors.As work on wrapped errors.
type AbsentError struct{}

func (AbsentError) Error() string { return "value is absent" }

// ErrAbsent is the error returned for absent optional values.
var ErrAbsent error = AbsentError{}

// OK returns v if ok is true, and [ErrAbsent] otherwise.
func OK[T any](v T, ok bool) (T, error) {
	if !ok {
		var zero T
		return zero, ErrAbsent
	}
	return v, nil
}

// Ptr returns the value p points to, or [ErrAbsent] if p is nil.
func Ptr[T any](p *T) (T, error) {
	if p == nil {
		var zero T
		return zero, ErrAbsent
	}
	return *p, nil
}

// absence is the panic value used by Get and Deref. Only Do recovers it.
// Outside of Do it surfaces as an error wrapping ErrAbsent.
type absence struct{}

func (absence) Error() string { return "unwrap: absent value outside unwrap.Do" }
func (absence) Unwrap() error { return ErrAbsent }

// Get returns v if ok is true. Otherwise it aborts the enclosing [Do].
//
// Calling Get with ok == false outside of Do panics with an error that
// matches [ErrAbsent].
func Get[T any](v T, ok bool) T {
	if !ok {
		Abort()
	}
	return v
}

// Deref returns the value p points to. If p is nil it aborts the enclosing
// [Do].
func Deref[T any](p *T) T {
	if p == nil {
		Abort()
	}
	return *p
}

// Abort stops the enclosing [Do], which then returns [ErrAbsent].
// It is for use by optional types that build their own expression forms.
func Abort() { panic(absence{}) }

// Do calls f and returns its result.
//
// If f reaches an absent value through [Get], [Deref] or [Abort], evaluation
// stops right there and Do returns the zero value of T and [ErrAbsent]. Other
// panics are not recovered.
func Do[T any](f func() T) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(absence); !ok {
				panic(r)
			}
			var zero T
			val, err = zero, ErrAbsent
		}
	}()
	return f(), nil
}

// Value unwraps and returns val if err is nil.
// It panics if err is not nil.
func Value[T any](val T, err error) T {
	NoError(err)
	return val
}

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}
