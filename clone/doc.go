// SPDX-License-Identifier: MIT
//
// Package clone defines the Cloneable contract shared by every prototype in
// protokit, together with helpers that duplicate loosely-typed value trees.
//
// Depth
//
//	Shallow - value fields (strings, numbers, bools) are copied; reference
//	          fields (maps, slices, owned sub-objects) are aliased, so the
//	          clone and its source observe the same nested structures.
//	Deep    - value fields are copied and every reference field is duplicated
//	          recursively; nothing reachable from the clone is shared.
//
// In both modes the returned object is a new instance (clone != source) and
// the source is never modified.
//
// Non-cloneable fields
//
//	A field that holds an external handle (file, socket, connection) has no
//	deep-copy strategy. Such values implement Resource. A Shallow clone shares
//	them; a Deep clone fails with *NotCloneableError naming the field path.
//	Unsupported reference kinds (pointers, channels, funcs, maps and slices of
//	unknown element types) are treated the same way, so a Deep clone never
//	silently aliases something it could not copy.
//
// Errors:
//
//	ErrNotCloneable - deep clone met a field without a copy strategy.
//	ErrUnknownField - a named field does not exist on the value.
//	ErrNilValue     - Clone was asked to copy a nil Cloneable.
//
// Usage:
//
//	c, err := tmpl.Clone(clone.Deep)
//	var nc *clone.NotCloneableError
//	if errors.As(err, &nc) {
//		log.Printf("field %s cannot be deep-copied", nc.Field)
//	}
package clone
