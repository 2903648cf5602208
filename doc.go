// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pin provides fluent, chainable builders for expressing
// layout relationships between items as constraints, on top of any
// constraint-based layout engine (see [cogentcore.org/pin/anchors]).
// It does not solve layout; it constructs constraints and keeps them
// in a [Registry] under stable string identifiers so that they can be
// fetched, activated, deactivated, and removed later.
//
// There are two builders: [Discrete] for relationships involving a
// single item (fixed width, own aspect ratio), and [Relational] for
// relationships between a primary item and a secondary counterpart
// item (equal edges, flow, centers, dimensions). The two builders are
// distinct types with disjoint relationship methods, so calling a
// two-item relationship without a counterpart item cannot compile.
//
// Typical usage pins a content item inside a frame and commits with
// one bulk activation:
//
//	pin.NewRelational(content, frame).Edges(8).Centers().ActivateAll()
//
// Each relationship method stores its constraint under a canonical
// identifier derived from its [Kinds] value (e.g., [LeadingEdges] is
// "pin.relational.leading.leading"), so identical builder calls are
// idempotently addressable by kind. Ad-hoc constraints can be added
// under free-form identifiers with [Registry.Add].
package pin
