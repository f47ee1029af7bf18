// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"io"

	"github.com/katalvlaran/protokit/flyweight"
)

// Point is a position on the page in layout units.
type Point struct {
	X, Y int
}

// Style is the per-character formatting supplied at render time.
type Style struct {
	FontSize int
	Color    string
}

// DefaultStyle is 12pt black.
var DefaultStyle = Style{FontSize: 12, Color: "black"}

// Glyph is the shared, intrinsic part of a character.
type Glyph struct {
	r rune
}

// Rune returns the character this glyph represents.
func (g *Glyph) Rune() rune { return g.r }

// Render writes one line describing g drawn at p with s.
func (g *Glyph) Render(w io.Writer, p Point, s Style) error {
	_, err := fmt.Fprintf(w, "'%c' at (%3d,%3d) size=%2d color=%s\n", g.r, p.X, p.Y, s.FontSize, s.Color)
	return err
}

// String implements fmt.Stringer.
func (g *Glyph) String() string { return fmt.Sprintf("Glyph(%q)", g.r) }

// Glyphs is the shared glyph cache.
type Glyphs = flyweight.Cache[rune, *Glyph]

// NewGlyphs returns an empty glyph cache.
func NewGlyphs(opts ...flyweight.Option) *Glyphs {
	// The factory is non-nil, so New cannot fail.
	g, _ := flyweight.New(func(r rune) *Glyph { return &Glyph{r: r} }, opts...)
	return g
}
