/*
Package scope implements lexical scope chains for ICSS variables.

A Chain is an ordered stack of scopes, one per nesting level of the syntax
tree. Each scope maps variable names to a binding, which is a static type
for the checker and a literal value for the evaluator. Lookup walks from
the innermost scope outwards, so inner declarations shadow outer ones.
Popping a scope drops its bindings and uncovers shadowed ones again.

A chain is owned by exactly one pass over one tree and is not safe for
concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scope

import (
	"fmt"

	"github.com/npillmayer/icss/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss.scope'.
func tracer() tracing.Trace {
	return tracing.Select("icss.scope")
}

// Chain is a stack of scopes binding names to values of type T.
// The zero value is an empty chain without any scope.
type Chain[T any] struct {
	scopes []map[string]T
}

// NewChain creates an empty scope chain.
func NewChain[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Push opens a new, empty innermost scope.
func (c *Chain[T]) Push() {
	c.scopes = append(c.scopes, make(map[string]T))
	tracer().Debugf("scope: push, depth = %d", len(c.scopes))
}

// Pop closes the innermost scope. Popping an empty chain is a programming
// error and panics.
func (c *Chain[T]) Pop() {
	if len(c.scopes) == 0 {
		panic("icss.scope: pop on empty scope chain")
	}
	c.scopes[len(c.scopes)-1] = nil
	c.scopes = c.scopes[:len(c.scopes)-1]
	tracer().Debugf("scope: pop, depth = %d", len(c.scopes))
}

// Depth returns the number of open scopes.
func (c *Chain[T]) Depth() int {
	return len(c.scopes)
}

// Declare binds name to v in the innermost scope, replacing a binding of
// name in that scope. Declaring without an open scope panics.
func (c *Chain[T]) Declare(name string, v T) {
	if len(c.scopes) == 0 {
		panic(fmt.Sprintf("icss.scope: declaration of %q outside of any scope", name))
	}
	tracer().Debugf("scope: declare %s = %v at depth %d", name, v, len(c.scopes))
	c.scopes[len(c.scopes)-1][name] = v
}

// DeclaredLocally is true if the innermost scope binds name.
func (c *Chain[T]) DeclaredLocally(name string) bool {
	if len(c.scopes) == 0 {
		return false
	}
	_, ok := c.scopes[len(c.scopes)-1][name]
	return ok
}

// Lookup finds the binding of name in the innermost scope declaring it.
// If no scope binds name, Lookup returns Nothing.
func (c *Chain[T]) Lookup(name string) maybe.Maybe[T] {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i][name]; ok {
			return maybe.Just(v)
		}
	}
	return maybe.Nothing[T]()
}
