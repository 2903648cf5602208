// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pin

import (
	"cogentcore.org/core/base/errors"
	"gopkg.in/yaml.v3"
)

// ConstraintInfo is a serializable summary of one registered
// constraint, as reported by [Registry.Snapshot].
type ConstraintInfo struct {
	Identifier string  `yaml:"identifier"`
	First      string  `yaml:"first"`
	Second     string  `yaml:"second,omitempty"`
	Constant   float32 `yaml:"constant"`
	Multiplier float32 `yaml:"multiplier"`
	Active     bool    `yaml:"active"`
}

// Snapshot returns a summary of every registered constraint, in the
// order added, for diagnostics and tests. The active flags are read
// through from the constraints at the time of the call.
func (r *Registry) Snapshot() []ConstraintInfo {
	infos := make([]ConstraintInfo, len(r.Constraints))
	for i, c := range r.Constraints {
		infos[i] = ConstraintInfo{
			Identifier: r.Identifiers[i],
			First:      c.First.String(),
			Constant:   c.Constant,
			Multiplier: c.Multiplier,
			Active:     c.IsActive(),
		}
		if !c.Second.IsZero() {
			infos[i].Second = c.Second.String()
		}
	}
	return infos
}

// String renders [Registry.Snapshot] as YAML.
func (r *Registry) String() string {
	b, err := yaml.Marshal(r.Snapshot())
	if err != nil {
		return errors.Log(err).Error()
	}
	return string(b)
}
