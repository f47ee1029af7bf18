// SPDX-License-Identifier: MIT
//
// Package flyweight provides a key-deduplicated, concurrency-safe cache that
// keeps at most one shared instance per intrinsic key.
//
// Intrinsic vs. extrinsic state
//
//	The key (a glyph, a style tag, a type name) is the intrinsic state: it is
//	identical across every logical occurrence and is all a shared instance may
//	hold. Per-occurrence data (position, colour, size) is extrinsic: callers
//	pass it at the point of use and never fold it into the key or store it on
//	the shared instance. Folding extrinsic data into the key silently breaks
//	deduplication.
//
// Guarantees
//
//   - For a fixed key, repeated GetOrCreate calls return the identical
//     instance until Reset.
//   - The Factory runs exactly once per key between resets, even when many
//     goroutines request the same missing key at once.
//   - Count equals the number of distinct keys ever requested since the last
//     Reset, independent of request volume.
//   - Reset orphans handed-out instances; they remain valid for their holders.
//
// Errors:
//
//	ErrNilFactory      - New was given a nil Factory.
//	ErrInvalidCacheKey - the key cannot be hashed (an interface-typed key
//	                     holding a slice, map or func) or was rejected by
//	                     the WithKeyValidator hook. Reported as
//	                     *InvalidCacheKeyError; the cache is left unchanged.
//
// Usage:
//
//	glyphs, _ := flyweight.New(func(r rune) *Glyph { return &Glyph{r: r} })
//	g, err := glyphs.GetOrCreate('a')
package flyweight
