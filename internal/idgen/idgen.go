// Package idgen provides the per-compilation fresh-state-id counter used by
// the NFA builder. A Counter must never be shared across compilations or
// goroutines; each pattern compilation owns exactly one.
package idgen

import "math"

// ID is the underlying type of a freshly allocated identifier.
type ID = uint32

// Counter hands out monotonically increasing, non-colliding ids.
//
// The zero value is ready to use, starting from 0.
type Counter struct {
	next uint32
}

// Next returns a fresh id and advances the counter.
//
// Panics on overflow: this indicates a pattern large enough to exhaust a
// 32-bit id space, which is a programmer/resource error, not a user input
// error worth surfacing as a CompileError.
func (c *Counter) Next() ID {
	if c.next == math.MaxUint32 {
		panic("idgen: state id space exhausted")
	}
	id := c.next
	c.next++
	return id
}

// Len reports how many ids have been allocated so far.
func (c *Counter) Len() int {
	return int(c.next)
}
