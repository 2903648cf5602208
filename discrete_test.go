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

func TestDiscreteWidth(t *testing.T) {
	box := anchors.NewBox("a")
	dc := NewDiscrete(box).Width(100)
	assert.Equal(t, 1, dc.Len())

	c, ok := dc.AtTry("pin.discrete.width")
	require.True(t, ok)
	assert.Equal(t, float32(100), c.Constant)
	assert.Equal(t, anchors.Width, c.First.Attr)
	assert.Same(t, box, c.First.Item.(*anchors.Box))
	assert.True(t, c.Second.IsZero())
	assert.False(t, c.IsActive())

	dc.ActivateAll()
	assert.True(t, c.IsActive())
	assert.Equal(t, Active, dc.State)
}

func TestDiscreteHeight(t *testing.T) {
	dc := NewDiscrete(anchors.NewBox("a")).Height(50)
	c := dc.AtKind(Height)
	require.NotNil(t, c)
	assert.Equal(t, float32(50), c.Constant)
	assert.Equal(t, anchors.Height, c.First.Attr)
}

func TestDiscreteAspect(t *testing.T) {
	box := anchors.NewBox("a")
	dc := NewDiscrete(box).WidthToHeight(2).HeightToWidth()
	assert.Equal(t, 2, dc.Len())

	wh := dc.At("pin.discrete.width.height")
	require.NotNil(t, wh)
	assert.Equal(t, float32(2), wh.Multiplier)
	assert.Equal(t, anchors.Width, wh.First.Attr)
	assert.Equal(t, anchors.Height, wh.Second.Attr)
	// both anchors are on the same subject item
	assert.Same(t, box, wh.First.Item.(*anchors.Box))
	assert.Same(t, box, wh.Second.Item.(*anchors.Box))

	hw := dc.AtKind(HeightToWidth)
	require.NotNil(t, hw)
	assert.Equal(t, float32(1), hw.Multiplier)
}

func TestDiscreteDuplicateKind(t *testing.T) {
	dc := NewDiscrete(anchors.NewBox("a")).Width(100).Width(200)
	assert.Equal(t, 1, dc.Len())
	assert.Equal(t, float32(100), dc.AtKind(Width).Constant)
}

func TestDiscreteChain(t *testing.T) {
	dc := NewDiscrete(anchors.NewBox("a")).Width(10).Height(20).ActivateAll()
	assert.Equal(t, []string{"pin.discrete.width", "pin.discrete.height"}, dc.Identifiers)
	for _, c := range dc.Constraints {
		assert.True(t, c.IsActive())
	}
}
