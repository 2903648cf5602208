// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pin

import (
	"testing"

	"cogentcore.org/pin/anchors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationalEdges(t *testing.T) {
	a := anchors.NewBox("a")
	b := anchors.NewBox("b")
	rl := NewRelational(a, b).Edges()
	assert.Equal(t, 4, rl.Len())

	for _, k := range []Kinds{LeadingEdges, TrailingEdges, TopEdges, BottomEdges} {
		c, ok := rl.AtTryKind(k)
		require.True(t, ok, k.String())
		first, second := k.Attributes()
		assert.Equal(t, first, c.First.Attr, k.String())
		assert.Equal(t, second, c.Second.Attr, k.String())
		assert.Same(t, a, c.First.Item.(*anchors.Box), k.String())
		assert.Same(t, b, c.Second.Item.(*anchors.Box), k.String())
		assert.Equal(t, float32(0), c.Constant, k.String())
		assert.False(t, c.IsActive(), k.String())
	}

	rl.ActivateAll()
	for _, c := range rl.Constraints {
		assert.True(t, c.IsActive())
	}
}

func TestRelationalEdgeOffsets(t *testing.T) {
	a := anchors.NewBox("a")
	b := anchors.NewBox("b")
	rl := NewRelational(a, b).LeadingEdges(10).TrailingEdges(-10)

	rl.ActivateKind(LeadingEdges).ActivateKind(TrailingEdges)

	lead := rl.AtKind(LeadingEdges)
	require.NotNil(t, lead)
	assert.Equal(t, float32(10), lead.Constant)
	assert.True(t, lead.IsActive())

	trail := rl.AtKind(TrailingEdges)
	require.NotNil(t, trail)
	assert.Equal(t, float32(-10), trail.Constant)
	assert.True(t, trail.IsActive())
}

func TestRelationalEdgesMultiOffset(t *testing.T) {
	rl := NewRelational(anchors.NewBox("a"), anchors.NewBox("b")).Edges(5, 10)
	assert.Equal(t, float32(5), rl.AtKind(TopEdges).Constant)
	assert.Equal(t, float32(5), rl.AtKind(BottomEdges).Constant)
	assert.Equal(t, float32(10), rl.AtKind(TrailingEdges).Constant)
	assert.Equal(t, float32(10), rl.AtKind(LeadingEdges).Constant)

	rl = NewRelational(anchors.NewBox("a"), anchors.NewBox("b")).Edges(1, 2, 3, 4)
	assert.Equal(t, float32(1), rl.AtKind(TopEdges).Constant)
	assert.Equal(t, float32(2), rl.AtKind(TrailingEdges).Constant)
	assert.Equal(t, float32(3), rl.AtKind(BottomEdges).Constant)
	assert.Equal(t, float32(4), rl.AtKind(LeadingEdges).Constant)
}

func TestRelationalFlow(t *testing.T) {
	a := anchors.NewBox("a")
	b := anchors.NewBox("b")
	rl := NewRelational(a, b).Before(2).After().Above(-3).Below()
	assert.Equal(t, 4, rl.Len())

	before := rl.AtKind(Before)
	require.NotNil(t, before)
	assert.Equal(t, anchors.Trailing, before.First.Attr)
	assert.Equal(t, anchors.Leading, before.Second.Attr)
	assert.Equal(t, float32(2), before.Constant)

	after := rl.AtKind(After)
	require.NotNil(t, after)
	assert.Equal(t, anchors.Leading, after.First.Attr)
	assert.Equal(t, anchors.Trailing, after.Second.Attr)
	assert.Equal(t, float32(0), after.Constant)

	above := rl.AtKind(Above)
	require.NotNil(t, above)
	assert.Equal(t, anchors.Bottom, above.First.Attr)
	assert.Equal(t, anchors.Top, above.Second.Attr)
	assert.Equal(t, float32(-3), above.Constant)

	below := rl.AtKind(Below)
	require.NotNil(t, below)
	assert.Equal(t, anchors.Top, below.First.Attr)
	assert.Equal(t, anchors.Bottom, below.Second.Attr)
}

func TestRelationalCentersDimensions(t *testing.T) {
	rl := NewRelational(anchors.NewBox("a"), anchors.NewBox("b")).CenterX(2).Widths(0.5).Heights()
	assert.Equal(t, 3, rl.Len())

	cx := rl.AtKind(CenterX)
	require.NotNil(t, cx)
	assert.Equal(t, anchors.CenterX, cx.First.Attr)
	assert.Equal(t, float32(2), cx.Multiplier)

	assert.Equal(t, float32(0.5), rl.AtKind(Widths).Multiplier)
	assert.Equal(t, float32(1), rl.AtKind(Heights).Multiplier)
}

func TestRelationalCenters(t *testing.T) {
	rl := NewRelational(anchors.NewBox("a"), anchors.NewBox("b")).Centers()
	assert.Equal(t, 2, rl.Len())
	assert.NotNil(t, rl.AtKind(CenterX))
	assert.NotNil(t, rl.AtKind(CenterY))
	assert.Equal(t, float32(1), rl.AtKind(CenterY).Multiplier)
}

func TestRelationalEdgeToCenter(t *testing.T) {
	rl := NewRelational(anchors.NewBox("a"), anchors.NewBox("b")).
		LeadingToCenter(4).TrailingToCenter().TopToCenter(-1).BottomToCenter()
	assert.Equal(t, 4, rl.Len())

	lc := rl.AtKind(LeadingToCenter)
	require.NotNil(t, lc)
	assert.Equal(t, anchors.Leading, lc.First.Attr)
	assert.Equal(t, anchors.CenterX, lc.Second.Attr)
	assert.Equal(t, float32(4), lc.Constant)

	tc := rl.AtKind(TopToCenter)
	require.NotNil(t, tc)
	assert.Equal(t, anchors.Top, tc.First.Attr)
	assert.Equal(t, anchors.CenterY, tc.Second.Attr)
	assert.Equal(t, float32(-1), tc.Constant)
}

func TestRelationalDuplicateKind(t *testing.T) {
	rl := NewRelational(anchors.NewBox("a"), anchors.NewBox("b")).LeadingEdges(1).LeadingEdges(2)
	assert.Equal(t, 1, rl.Len())
	assert.Equal(t, float32(1), rl.AtKind(LeadingEdges).Constant)
}

func TestRelationalCustomEngine(t *testing.T) {
	eng := &countingEngine{}
	rl := NewRelational(anchors.NewBox("a"), anchors.NewBox("b")).SetEngine(eng).Edges().Centers()
	assert.Equal(t, 6, eng.constrained)
	rl.ActivateAll()
	assert.Equal(t, 1, eng.activations)
	rl.DeactivateAll()
	assert.Equal(t, 1, eng.deactivations)
}

// countingEngine counts engine calls, to confirm that construction
// and bulk activation all route through the configured engine.
type countingEngine struct {
	anchors.Base
	constrained   int
	activations   int
	deactivations int
}

func (ce *countingEngine) Constrain(first, second anchors.Anchor, constant, multiplier float32) *anchors.Constraint {
	ce.constrained++
	return ce.Base.Constrain(first, second, constant, multiplier)
}

func (ce *countingEngine) Activate(cs ...*anchors.Constraint) {
	ce.activations++
	ce.Base.Activate(cs...)
}

func (ce *countingEngine) Deactivate(cs ...*anchors.Constraint) {
	ce.deactivations++
	ce.Base.Deactivate(cs...)
}
