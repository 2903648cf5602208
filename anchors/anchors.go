// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchors defines the surface that [cogentcore.org/pin]
// consumes from a constraint-based layout engine: per-attribute
// anchors on layout items, constraint handles with a constant,
// multiplier, and active flag, and bulk activation entry points.
// The package performs no layout itself; [Base] is a solver-less
// engine that only constructs constraints and tracks their flags,
// and engines that bridge to a native layout system implement
// [Engine] on top of it.
package anchors

//go:generate core generate

import "cogentcore.org/core/base/labels"

// Attributes are the layout attributes that an [Anchor] can refer to.
type Attributes int32 //enums:enum

const (
	// None is the absence of an attribute. It is the attribute of the
	// second anchor of constraints that involve only one item.
	None Attributes = iota

	// Leading is the leading edge of an item.
	Leading

	// Trailing is the trailing edge of an item.
	Trailing

	// Top is the top edge of an item.
	Top

	// Bottom is the bottom edge of an item.
	Bottom

	// CenterX is the horizontal center of an item.
	CenterX

	// CenterY is the vertical center of an item.
	CenterY

	// Width is the width of an item.
	Width

	// Height is the height of an item.
	Height
)

// Item is a participant in layout. The only thing this package needs
// from an item is that it can label itself for identification in
// diagnostics, so any [labels.Labeler] can be anchored.
type Item = labels.Labeler

// Anchor is one layout attribute of one item.
type Anchor struct {

	// Item is the item the anchor belongs to. It is nil in the zero
	// anchor, used as the second anchor of single-item constraints.
	Item Item

	// Attr is the attribute the anchor refers to.
	Attr Attributes
}

// IsZero reports whether the anchor is unset.
func (a Anchor) IsZero() bool {
	return a.Item == nil && a.Attr == None
}

// String returns the anchor as item.attribute, e.g., "content.leading".
func (a Anchor) String() string {
	if a.Item == nil {
		return a.Attr.String()
	}
	return a.Item.Label() + "." + a.Attr.String()
}

// Box is a minimal [Item], useful for tests, examples, and headless
// use of a registry where no native layout item exists.
type Box struct {

	// Name is the label reported by the box.
	Name string
}

// NewBox returns a new [Box] with the given name.
func NewBox(name string) *Box {
	return &Box{Name: name}
}

func (b *Box) Label() string {
	return b.Name
}
