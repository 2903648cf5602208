// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pin

import "fmt"

// DuplicateError is the error returned by [Registry.Add] and its
// variants when a constraint is added under an identifier that is
// already registered. It indicates a usage error: the registry keeps
// the existing constraint, and the caller decides what to do with the
// new one.
type DuplicateError struct {

	// Identifier is the identifier that was already registered.
	Identifier string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("pin: identifier %q is already registered", e.Identifier)
}
