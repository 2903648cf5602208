// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pin

//go:generate core generate

import "cogentcore.org/pin/anchors"

// Kinds are the well-known layout relationship kinds that the
// [Discrete] and [Relational] builders can express. Each kind maps
// deterministically to a canonical registry identifier via
// [Kinds.Identifier], so constraints made by builder methods are
// addressable by kind. Discrete kinds involve a single item;
// relational kinds relate a primary item to a secondary item.
type Kinds int32 //enums:enum

const (
	// Width is a fixed width on a single item.
	Width Kinds = iota

	// Height is a fixed height on a single item.
	Height

	// WidthToHeight makes the width of an item proportional
	// to its own height.
	WidthToHeight

	// HeightToWidth makes the height of an item proportional
	// to its own width.
	HeightToWidth

	// LeadingEdges equates the leading edges of two items.
	LeadingEdges

	// TrailingEdges equates the trailing edges of two items.
	TrailingEdges

	// TopEdges equates the top edges of two items.
	TopEdges

	// BottomEdges equates the bottom edges of two items.
	BottomEdges

	// Before pins the trailing edge of the primary item to the
	// leading edge of the secondary item.
	Before

	// After pins the leading edge of the primary item to the
	// trailing edge of the secondary item.
	After

	// Above pins the bottom edge of the primary item to the
	// top edge of the secondary item.
	Above

	// Below pins the top edge of the primary item to the
	// bottom edge of the secondary item.
	Below

	// CenterX equates the horizontal centers of two items.
	CenterX

	// CenterY equates the vertical centers of two items.
	CenterY

	// Widths equates the widths of two items.
	Widths

	// Heights equates the heights of two items.
	Heights

	// LeadingToCenter pins the leading edge of the primary item to
	// the horizontal center of the secondary item.
	LeadingToCenter

	// TrailingToCenter pins the trailing edge of the primary item to
	// the horizontal center of the secondary item.
	TrailingToCenter

	// TopToCenter pins the top edge of the primary item to the
	// vertical center of the secondary item.
	TopToCenter

	// BottomToCenter pins the bottom edge of the primary item to the
	// vertical center of the secondary item.
	BottomToCenter
)

// kindData specifies the family and anchor attributes of one kind.
type kindData struct {
	relational bool
	first      anchors.Attributes
	second     anchors.Attributes
}

// kinds must cover every [Kinds] value; see TestKindsTable.
var kinds = map[Kinds]kindData{
	Width:            {false, anchors.Width, anchors.None},
	Height:           {false, anchors.Height, anchors.None},
	WidthToHeight:    {false, anchors.Width, anchors.Height},
	HeightToWidth:    {false, anchors.Height, anchors.Width},
	LeadingEdges:     {true, anchors.Leading, anchors.Leading},
	TrailingEdges:    {true, anchors.Trailing, anchors.Trailing},
	TopEdges:         {true, anchors.Top, anchors.Top},
	BottomEdges:      {true, anchors.Bottom, anchors.Bottom},
	Before:           {true, anchors.Trailing, anchors.Leading},
	After:            {true, anchors.Leading, anchors.Trailing},
	Above:            {true, anchors.Bottom, anchors.Top},
	Below:            {true, anchors.Top, anchors.Bottom},
	CenterX:          {true, anchors.CenterX, anchors.CenterX},
	CenterY:          {true, anchors.CenterY, anchors.CenterY},
	Widths:           {true, anchors.Width, anchors.Width},
	Heights:          {true, anchors.Height, anchors.Height},
	LeadingToCenter:  {true, anchors.Leading, anchors.CenterX},
	TrailingToCenter: {true, anchors.Trailing, anchors.CenterX},
	TopToCenter:      {true, anchors.Top, anchors.CenterY},
	BottomToCenter:   {true, anchors.Bottom, anchors.CenterY},
}

// IsDiscrete reports whether the kind involves only a single item.
func (k Kinds) IsDiscrete() bool {
	return !kinds[k].relational
}

// Attributes returns the anchor attributes the kind relates: first on
// the primary item, second on the secondary item (or on the same item
// for the own-aspect kinds). For single-anchor kinds, second is
// [anchors.None].
func (k Kinds) Attributes() (first, second anchors.Attributes) {
	kd := kinds[k]
	return kd.first, kd.second
}

// Identifier returns the canonical registry identifier for the kind,
// e.g., "pin.relational.leading.leading" for [LeadingEdges]. It is a
// pure function of the kind: the family followed by the related
// attribute names, in the form pin.family.first[.second].
func (k Kinds) Identifier() string {
	kd := kinds[k]
	fam := "discrete"
	if kd.relational {
		fam = "relational"
	}
	id := "pin." + fam + "." + kd.first.String()
	if kd.second != anchors.None {
		id += "." + kd.second.String()
	}
	return id
}
