// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchors

import "fmt"

// Constraint is a handle to one layout constraint owned by an
// [Engine]. It relates [Constraint.First] to [Constraint.Second]
// (equality, scaled by [Constraint.Multiplier], shifted by
// [Constraint.Constant]); what the engine does with that relation is
// entirely up to the engine. The active flag mirrors the engine state
// and is only mutated through [Constraint.SetActive], normally by the
// engine itself.
type Constraint struct {

	// Identifier is the registry identifier the constraint is stored
	// under. It is set when the constraint is added to a registry,
	// so it is empty on a freshly constructed constraint.
	Identifier string

	// First is the anchor on the primary item.
	First Anchor

	// Second is the anchor on the secondary item. It is the zero
	// [Anchor] for single-item constraints such as a fixed width.
	Second Anchor

	// Constant is the additive constant of the relation.
	Constant float32

	// Multiplier is the multiplicative factor of the relation.
	Multiplier float32

	// active is whether the engine currently applies the constraint.
	active bool
}

// IsActive reports whether the engine currently applies the
// constraint.
func (c *Constraint) IsActive() bool {
	return c.active
}

// SetActive sets the active flag. It is normally only called by the
// [Engine] that owns the constraint.
func (c *Constraint) SetActive(on bool) {
	c.active = on
}

func (c *Constraint) String() string {
	s := c.First.String()
	if !c.Second.IsZero() {
		s += " = " + c.Second.String()
	}
	return fmt.Sprintf("%s (constant: %g, multiplier: %g, active: %v)", s, c.Constant, c.Multiplier, c.active)
}
