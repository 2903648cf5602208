// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pin

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/pin/anchors"
)

// Relational is a fluent builder for constraints that relate a
// primary item to a secondary counterpart item: equal edges, flow
// (before, after, above, below), centers, dimensions, and
// edge-to-center pins. Every relationship method constructs a
// constraint through the engine, registers it in the embedded
// [Registry] under the canonical identifier of its [Kinds] value, and
// returns the builder for further chaining, with
// [Registry.ActivateAll] as the usual terminal call. Registering the
// same kind twice keeps the first constraint and logs an error.
//
// Offsets are signed and stored as given: by convention, a positive
// offset insets the primary item's leading or top edge, and a
// negative offset insets its trailing or bottom edge.
type Relational struct {
	Registry

	// First is the primary subject item.
	First anchors.Item

	// Second is the secondary counterpart item.
	Second anchors.Item
}

// NewRelational returns a new [Relational] builder relating the given
// primary item to the given secondary item, using [anchors.Default]
// as its engine.
func NewRelational(first, second anchors.Item) *Relational {
	rl := &Relational{First: first, Second: second}
	rl.init()
	return rl
}

// SetEngine sets the [anchors.Engine] used to construct and activate
// constraints and returns the builder.
func (rl *Relational) SetEngine(engine anchors.Engine) *Relational {
	rl.Engine = engine
	return rl
}

// addKind builds the constraint for the given kind between the two
// items and registers it under the kind's canonical identifier.
func (rl *Relational) addKind(k Kinds, constant, multiplier float32) *Relational {
	rl.init()
	first, second := k.Attributes()
	c := rl.Engine.Constrain(
		anchors.Anchor{Item: rl.First, Attr: first},
		anchors.Anchor{Item: rl.Second, Attr: second},
		constant, multiplier)
	errors.Log(rl.Add(k.Identifier(), c))
	return rl
}

// LeadingEdges registers a constraint equating the leading edges of
// the two items, with an optional signed offset (default 0).
func (rl *Relational) LeadingEdges(offset ...float32) *Relational {
	return rl.addKind(LeadingEdges, offsetOf(offset), 1)
}

// TrailingEdges registers a constraint equating the trailing edges of
// the two items, with an optional signed offset (default 0).
func (rl *Relational) TrailingEdges(offset ...float32) *Relational {
	return rl.addKind(TrailingEdges, offsetOf(offset), 1)
}

// TopEdges registers a constraint equating the top edges of the two
// items, with an optional signed offset (default 0).
func (rl *Relational) TopEdges(offset ...float32) *Relational {
	return rl.addKind(TopEdges, offsetOf(offset), 1)
}

// BottomEdges registers a constraint equating the bottom edges of the
// two items, with an optional signed offset (default 0).
func (rl *Relational) BottomEdges(offset ...float32) *Relational {
	return rl.addKind(BottomEdges, offsetOf(offset), 1)
}

// Before registers a constraint pinning the trailing edge of the
// primary item to the leading edge of the secondary item, with an
// optional signed offset (default 0).
func (rl *Relational) Before(offset ...float32) *Relational {
	return rl.addKind(Before, offsetOf(offset), 1)
}

// After registers a constraint pinning the leading edge of the
// primary item to the trailing edge of the secondary item, with an
// optional signed offset (default 0).
func (rl *Relational) After(offset ...float32) *Relational {
	return rl.addKind(After, offsetOf(offset), 1)
}

// Above registers a constraint pinning the bottom edge of the primary
// item to the top edge of the secondary item, with an optional signed
// offset (default 0).
func (rl *Relational) Above(offset ...float32) *Relational {
	return rl.addKind(Above, offsetOf(offset), 1)
}

// Below registers a constraint pinning the top edge of the primary
// item to the bottom edge of the secondary item, with an optional
// signed offset (default 0).
func (rl *Relational) Below(offset ...float32) *Relational {
	return rl.addKind(Below, offsetOf(offset), 1)
}

// CenterX registers a constraint equating the horizontal centers of
// the two items, with an optional multiplier (default 1).
func (rl *Relational) CenterX(multiplier ...float32) *Relational {
	return rl.addKind(CenterX, 0, multOf(multiplier))
}

// CenterY registers a constraint equating the vertical centers of the
// two items, with an optional multiplier (default 1).
func (rl *Relational) CenterY(multiplier ...float32) *Relational {
	return rl.addKind(CenterY, 0, multOf(multiplier))
}

// Widths registers a constraint equating the widths of the two items,
// with an optional multiplier (default 1).
func (rl *Relational) Widths(multiplier ...float32) *Relational {
	return rl.addKind(Widths, 0, multOf(multiplier))
}

// Heights registers a constraint equating the heights of the two
// items, with an optional multiplier (default 1).
func (rl *Relational) Heights(multiplier ...float32) *Relational {
	return rl.addKind(Heights, 0, multOf(multiplier))
}

// LeadingToCenter registers a constraint pinning the leading edge of
// the primary item to the horizontal center of the secondary item,
// with an optional signed offset (default 0).
func (rl *Relational) LeadingToCenter(offset ...float32) *Relational {
	return rl.addKind(LeadingToCenter, offsetOf(offset), 1)
}

// TrailingToCenter registers a constraint pinning the trailing edge
// of the primary item to the horizontal center of the secondary item,
// with an optional signed offset (default 0).
func (rl *Relational) TrailingToCenter(offset ...float32) *Relational {
	return rl.addKind(TrailingToCenter, offsetOf(offset), 1)
}

// TopToCenter registers a constraint pinning the top edge of the
// primary item to the vertical center of the secondary item, with an
// optional signed offset (default 0).
func (rl *Relational) TopToCenter(offset ...float32) *Relational {
	return rl.addKind(TopToCenter, offsetOf(offset), 1)
}

// BottomToCenter registers a constraint pinning the bottom edge of
// the primary item to the vertical center of the secondary item, with
// an optional signed offset (default 0).
func (rl *Relational) BottomToCenter(offset ...float32) *Relational {
	return rl.addKind(BottomToCenter, offsetOf(offset), 1)
}

// Edges registers all four edge equality constraints (leading,
// trailing, top, bottom) between the two items. The offset values
// follow the CSS multi-side convention, in top, trailing, bottom,
// leading order: 0 values sets all offsets to 0; 1 value applies to
// all four edges; 2 values apply to top/bottom and trailing/leading;
// 3 values apply to top, trailing/leading, and bottom; 4 values apply
// to each edge in order. More than 4 values also logs a programmer
// error.
func (rl *Relational) Edges(offset ...float32) *Relational {
	var top, trailing, bottom, leading float32
	switch len(offset) {
	case 0:
	case 1:
		top, trailing, bottom, leading = offset[0], offset[0], offset[0], offset[0]
	case 2:
		top, bottom = offset[0], offset[0]
		trailing, leading = offset[1], offset[1]
	case 3:
		top = offset[0]
		trailing, leading = offset[1], offset[1]
		bottom = offset[2]
	default:
		top, trailing, bottom, leading = offset[0], offset[1], offset[2], offset[3]
		if len(offset) > 4 {
			slog.Error("programmer error: pin: Relational.Edges: expected 0 to 4 offset values, but got", "numValues", len(offset))
		}
	}
	return rl.LeadingEdges(leading).TrailingEdges(trailing).TopEdges(top).BottomEdges(bottom)
}

// Centers registers both center equality constraints (horizontal and
// vertical) between the two items, with multiplier 1.
func (rl *Relational) Centers() *Relational {
	return rl.CenterX().CenterY()
}
