// SPDX-License-Identifier: MIT
//
// Package prototype provides a name-keyed Registry of template instances that
// issues clones on request, optionally patched with field overrides.
//
// The registry is an explicitly constructed value; there is no package-level
// state. Templates are never mutated by registry operations: every override is
// applied to the returned clone.
//
// Control flow of Create:
//
//	locate template ──(missing)──► *UnknownPrototypeError
//	      │
//	clone at Depth ──(deep, non-cloneable field)──► *clone.NotCloneableError
//	      │
//	apply overrides in sorted key order
//	      ├─ unknown key  ► warn (zap) + OnUnknownOverride hook, continue
//	      └─ bad value    ► ErrInvalidOverride, clone discarded
//	      │
//	return independent clone
//
// Core Methods:
//
//	Register(name, p) error         // store or replace, O(1)
//	Create(name, d, overrides) ...  // clone + patch, O(clone)
//	Names() []string                // registration order, O(N)
//	Has(name) bool / Len() int
//	Unregister(name) error          // O(N) to keep order compact
//	Clear()
//
// Concurrency:
//
//	A sync.RWMutex guards the catalog. Create clones under the read lock, so
//	any number of callers may create concurrently while writers wait.
//	Callers that still hold a reference to a registered template must not
//	mutate it while other goroutines call Create.
//
// Errors:
//
//	ErrUnknownPrototype     - no template under that name.
//	ErrEmptyName            - Register/Unregister with "".
//	ErrNilPrototype         - Register with a nil template.
//	ErrOverridesUnsupported - overrides given for a type without Patcher.
//	ErrInvalidOverride      - Patcher rejected an override value.
package prototype
