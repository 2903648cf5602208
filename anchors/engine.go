// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchors

// Engine is the interface to a constraint-based layout engine, as
// consumed by [cogentcore.org/pin]: anchor-to-anchor constraint
// construction, and bulk activation and deactivation. All calls are
// synchronous and complete before returning.
type Engine interface {

	// Constrain returns a new constraint relating first to second
	// with the given constant and multiplier. For single-item
	// constraints, second is the zero [Anchor]. The constraint
	// starts out inactive.
	Constrain(first, second Anchor, constant, multiplier float32) *Constraint

	// Activate makes the engine apply the given constraints,
	// setting their active flags.
	Activate(cs ...*Constraint)

	// Deactivate makes the engine stop applying the given
	// constraints, clearing their active flags.
	Deactivate(cs ...*Constraint)
}

// Default is the engine used by registries and builders that have not
// been configured with one.
var Default Engine = &Base{}

// Base is a solver-less [Engine]: it constructs constraints and
// tracks their active flags, but does not apply them to anything.
// It is usable on its own for bookkeeping and testing, and as the
// fallback behavior for engines that bridge to a native layout
// system.
type Base struct{}

func (be *Base) Constrain(first, second Anchor, constant, multiplier float32) *Constraint {
	return &Constraint{First: first, Second: second, Constant: constant, Multiplier: multiplier}
}

func (be *Base) Activate(cs ...*Constraint) {
	for _, c := range cs {
		c.SetActive(true)
	}
}

func (be *Base) Deactivate(cs ...*Constraint) {
	for _, c := range cs {
		c.SetActive(false)
	}
}
