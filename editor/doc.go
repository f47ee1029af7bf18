// SPDX-License-Identifier: MIT
//
// Package editor is a small text buffer built on flyweight glyphs.
//
// Every typed character is stored as a context record holding extrinsic
// state (position and Style) plus a pointer to the shared *Glyph for its rune.
// A Glyph holds only the rune itself, so a document of 140 characters drawn
// from 7 letters keeps 140 context records and 7 glyphs.
//
// Layout is fixed-pitch: each glyph advances the cursor by CharWidth, and a
// newline moves to the start of the next line, LineHeight below. Newlines
// are layout only and are not stored.
package editor
