/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or nothing. It is used for lookups
where "not found" is an outcome distinct from every value, e.g. searching
a variable through a chain of scopes.

Values are matched with a switch over a matcher:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		// use v
	case m.Nothing():
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	just  bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, just: true}
}

// Nothing is the absence of a value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

// Match returns a matcher for use in a switch statement.
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Get unwraps the value, together with a flag telling whether there is one.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// IsNothing is true if m holds no value.
func (m maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault returns the value of m, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to the value of m, if any.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher matches the two cases of a Maybe. Exactly one of the methods
// returns a non-nil matcher.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
