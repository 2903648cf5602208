// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pin

import (
	"slices"

	"cogentcore.org/pin/anchors"
)

// States are the bulk activation states of a [Registry], recording
// the last bulk call made on it. Individual per-identifier activation
// does not change the state.
type States int32 //enums:enum

const (
	// Undetermined means no bulk activation call has been made.
	Undetermined States = iota

	// Active means the last bulk call was [Registry.ActivateAll].
	Active

	// Inactive means the last bulk call was [Registry.DeactivateAll].
	Inactive
)

// Registry owns an ordered mapping from string identifiers to layout
// constraints, in the order added, and provides their lifecycle
// operations: add, fetch, activate, deactivate, and remove, plus bulk
// activation over everything registered. Activation always goes
// through the [Registry.Engine]; the registry never caches active
// flags. The zero value is usable without initialization.
//
// A registry is exclusively owned by its creator and carries no
// internal synchronization: use it from the single goroutine that
// owns the surrounding layout state.
type Registry struct {

	// Constraints is the ordered slice of constraints, in the order
	// added.
	Constraints []*anchors.Constraint

	// Identifiers is the ordered list of identifiers, in the same
	// order as [Registry.Constraints].
	Identifiers []string

	// indexes is the identifier-to-index mapping.
	indexes map[string]int

	// Engine is the constraint engine used for activation and
	// deactivation. It defaults to [anchors.Default].
	Engine anchors.Engine

	// State records the last bulk activation call.
	State States
}

// NewRegistry returns a new [Registry], using the given engine if
// one is passed and [anchors.Default] otherwise.
func NewRegistry(engine ...anchors.Engine) *Registry {
	r := &Registry{}
	if len(engine) > 0 {
		r.Engine = engine[0]
	}
	r.init()
	return r
}

// init ensures that the index map and engine exist.
func (r *Registry) init() {
	if r.indexes == nil {
		r.indexes = make(map[string]int)
	}
	if r.Engine == nil {
		r.Engine = anchors.Default
	}
}

// Add adds the given constraint under the given identifier, keeping
// it at the end of the order, and tags the constraint with the
// identifier so its provenance can be confirmed later. It returns a
// [DuplicateError] if the identifier is already registered, leaving
// the existing constraint unchanged. See [Registry.AddKind] for the
// kind-based version.
func (r *Registry) Add(id string, c *anchors.Constraint) error {
	r.init()
	if _, ok := r.indexes[id]; ok {
		return &DuplicateError{Identifier: id}
	}
	c.Identifier = id
	r.indexes[id] = len(r.Constraints)
	r.Constraints = append(r.Constraints, c)
	r.Identifiers = append(r.Identifiers, id)
	return nil
}

// AddNew evaluates the given constraint function, exactly once and
// eagerly, and adds the result under the given identifier via
// [Registry.Add].
func (r *Registry) AddNew(id string, fn func() *anchors.Constraint) error {
	return r.Add(id, fn())
}

// AddKind adds the given constraint under the canonical identifier
// of the given kind.
func (r *Registry) AddKind(k Kinds, c *anchors.Constraint) error {
	return r.Add(k.Identifier(), c)
}

// At returns the constraint registered under the given identifier,
// or nil if there is none. See [Registry.AtTry] for a version
// returning a bool, for cases where nil is not diagnostic.
func (r *Registry) At(id string) *anchors.Constraint {
	c, _ := r.AtTry(id)
	return c
}

// AtTry returns the constraint registered under the given identifier,
// with false returned if there is none.
func (r *Registry) AtTry(id string) (*anchors.Constraint, bool) {
	idx, ok := r.indexes[id]
	if !ok {
		return nil, false
	}
	return r.Constraints[idx], true
}

// AtKind returns the constraint registered under the canonical
// identifier of the given kind, or nil if there is none.
func (r *Registry) AtKind(k Kinds) *anchors.Constraint {
	return r.At(k.Identifier())
}

// AtTryKind returns the constraint registered under the canonical
// identifier of the given kind, with false returned if there is none.
func (r *Registry) AtTryKind(k Kinds) (*anchors.Constraint, bool) {
	return r.AtTry(k.Identifier())
}

// Do calls the given function with the result of looking up the given
// identifier, present or not, and returns the registry for chaining.
func (r *Registry) Do(id string, fn func(c *anchors.Constraint, ok bool)) *Registry {
	c, ok := r.AtTry(id)
	fn(c, ok)
	return r
}

// Activate asks the engine to activate the constraint registered
// under the given identifier, and is a no-op if there is none.
func (r *Registry) Activate(id string) *Registry {
	r.init()
	if c, ok := r.AtTry(id); ok {
		r.Engine.Activate(c)
	}
	return r
}

// Deactivate asks the engine to deactivate the constraint registered
// under the given identifier, and is a no-op if there is none.
func (r *Registry) Deactivate(id string) *Registry {
	r.init()
	if c, ok := r.AtTry(id); ok {
		r.Engine.Deactivate(c)
	}
	return r
}

// ActivateKind is [Registry.Activate] for the canonical identifier of
// the given kind.
func (r *Registry) ActivateKind(k Kinds) *Registry {
	return r.Activate(k.Identifier())
}

// DeactivateKind is [Registry.Deactivate] for the canonical
// identifier of the given kind.
func (r *Registry) DeactivateKind(k Kinds) *Registry {
	return r.Deactivate(k.Identifier())
}

// ActivateAll asks the engine to activate every registered
// constraint, in one bulk call, and records [Active] as the registry
// state. It is idempotent.
func (r *Registry) ActivateAll() *Registry {
	r.init()
	r.Engine.Activate(r.Constraints...)
	r.State = Active
	return r
}

// DeactivateAll asks the engine to deactivate every registered
// constraint, in one bulk call, and records [Inactive] as the
// registry state. It is idempotent.
func (r *Registry) DeactivateAll() *Registry {
	r.init()
	r.Engine.Deactivate(r.Constraints...)
	r.State = Inactive
	return r
}

// Remove detaches and returns the constraint registered under the
// given identifier, or nil if there is none. Removal is bookkeeping
// only: the constraint's active flag is left wherever the engine last
// put it.
func (r *Registry) Remove(id string) *anchors.Constraint {
	idx, ok := r.indexes[id]
	if !ok {
		return nil
	}
	c := r.Constraints[idx]
	r.Constraints = slices.Delete(r.Constraints, idx, idx+1)
	r.Identifiers = slices.Delete(r.Identifiers, idx, idx+1)
	r.indexes = make(map[string]int)
	for i, k := range r.Identifiers {
		r.indexes[k] = i
	}
	return c
}

// RemoveKind is [Registry.Remove] for the canonical identifier of the
// given kind.
func (r *Registry) RemoveKind(k Kinds) *anchors.Constraint {
	return r.Remove(k.Identifier())
}

// Len returns the number of registered constraints.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Constraints)
}

// Reset removes all registered constraints, without touching their
// active flags, and resets the state to [Undetermined].
func (r *Registry) Reset() {
	r.Constraints = nil
	r.Identifiers = nil
	r.indexes = make(map[string]int)
	r.State = Undetermined
}
