// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pin

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/pin/anchors"
)

// Discrete is a fluent builder for constraints that involve only one
// subject item: fixed dimensions and own-aspect relationships. Every
// relationship method constructs a constraint through the engine,
// registers it in the embedded [Registry] under the canonical
// identifier of its [Kinds] value, and returns the builder for
// further chaining, with [Registry.ActivateAll] as the usual terminal
// call. Registering the same kind twice keeps the first constraint
// and logs an error.
type Discrete struct {
	Registry

	// Item is the subject of every constraint made by this builder.
	Item anchors.Item
}

// NewDiscrete returns a new [Discrete] builder for the given subject
// item, using [anchors.Default] as its engine.
func NewDiscrete(item anchors.Item) *Discrete {
	dc := &Discrete{Item: item}
	dc.init()
	return dc
}

// SetEngine sets the [anchors.Engine] used to construct and activate
// constraints and returns the builder.
func (dc *Discrete) SetEngine(engine anchors.Engine) *Discrete {
	dc.Engine = engine
	return dc
}

// addKind builds the constraint for the given kind on the subject
// item and registers it under the kind's canonical identifier.
func (dc *Discrete) addKind(k Kinds, constant, multiplier float32) *Discrete {
	dc.init()
	first, second := k.Attributes()
	var sa anchors.Anchor
	if second != anchors.None {
		sa = anchors.Anchor{Item: dc.Item, Attr: second}
	}
	c := dc.Engine.Constrain(anchors.Anchor{Item: dc.Item, Attr: first}, sa, constant, multiplier)
	errors.Log(dc.Add(k.Identifier(), c))
	return dc
}

// Width registers a fixed width constraint with the given constant.
func (dc *Discrete) Width(constant float32) *Discrete {
	return dc.addKind(Width, constant, 1)
}

// Height registers a fixed height constraint with the given constant.
func (dc *Discrete) Height(constant float32) *Discrete {
	return dc.addKind(Height, constant, 1)
}

// WidthToHeight registers a constraint making the width of the item
// proportional to its own height, with an optional multiplier
// (default 1).
func (dc *Discrete) WidthToHeight(multiplier ...float32) *Discrete {
	return dc.addKind(WidthToHeight, 0, multOf(multiplier))
}

// HeightToWidth registers a constraint making the height of the item
// proportional to its own width, with an optional multiplier
// (default 1).
func (dc *Discrete) HeightToWidth(multiplier ...float32) *Discrete {
	return dc.addKind(HeightToWidth, 0, multOf(multiplier))
}

// offsetOf returns the optional offset value, defaulting to 0.
func offsetOf(offset []float32) float32 {
	if len(offset) > 1 {
		slog.Error("programmer error: pin: expected at most one offset value, but got", "numValues", len(offset))
	}
	if len(offset) > 0 {
		return offset[0]
	}
	return 0
}

// multOf returns the optional multiplier value, defaulting to 1.
func multOf(multiplier []float32) float32 {
	if len(multiplier) > 1 {
		slog.Error("programmer error: pin: expected at most one multiplier value, but got", "numValues", len(multiplier))
	}
	if len(multiplier) > 0 {
		return multiplier[0]
	}
	return 1
}
