// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Layout constants in page units.
const (
	CharWidth  = 10
	LineHeight = 20
)

// ErrInvalidRange indicates FormatRange bounds outside [0, Len()] or start >= end.
var ErrInvalidRange = errors.New("editor: invalid range")

// Format selects style changes for FormatRange. Zero fields keep the
// current value.
type Format struct {
	FontSize int
	Color    string
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// char is one typed character: a shared glyph plus extrinsic state.
type char struct {
	glyph *Glyph
	at    Point
	style Style
}

// Editor is a text buffer. It is not safe for concurrent use; the Glyphs
// cache it draws from is, and may be shared between editors.
type Editor struct {
	glyphs *Glyphs
	chars  []char
	cursor Point
	log    *zap.Logger
}

// New creates an empty Editor over glyphs. A nil glyphs gets a private cache.
func New(glyphs *Glyphs, opts ...Option) *Editor {
	if glyphs == nil {
		glyphs = NewGlyphs()
	}
	e := &Editor{glyphs: glyphs, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Type appends text at the cursor using s. On error nothing is appended and
// the cursor does not move.
func (e *Editor) Type(text string, s Style) error {
	cursor := e.cursor
	typed := make([]char, 0, len(text))
	for _, r := range text {
		if r == '\n' {
			cursor = Point{X: 0, Y: cursor.Y + LineHeight}
			continue
		}
		g, err := e.glyphs.GetOrCreate(r)
		if err != nil {
			return fmt.Errorf("editor: type %q: %w", r, err)
		}
		typed = append(typed, char{glyph: g, at: cursor, style: s})
		cursor.X += CharWidth
	}
	e.chars = append(e.chars, typed...)
	e.cursor = cursor

	return nil
}

// Text returns the stored characters as a string.
func (e *Editor) Text() string {
	var b strings.Builder
	b.Grow(len(e.chars))
	for _, c := range e.chars {
		b.WriteRune(c.glyph.Rune())
	}

	return b.String()
}

// Len returns the number of stored characters.
func (e *Editor) Len() int { return len(e.chars) }

// FormatRange restyles characters [start, end).
func (e *Editor) FormatRange(start, end int, f Format) error {
	if start < 0 || end > len(e.chars) || start >= end {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrInvalidRange, start, end, len(e.chars))
	}
	for i := start; i < end; i++ {
		if f.FontSize != 0 {
			e.chars[i].style.FontSize = f.FontSize
		}
		if f.Color != "" {
			e.chars[i].style.Color = f.Color
		}
	}
	e.log.Debug("range formatted", zap.Int("start", start), zap.Int("end", end))

	return nil
}

// Render draws every character in order.
func (e *Editor) Render(w io.Writer) error {
	for _, c := range e.chars {
		if err := c.glyph.Render(w, c.at, c.style); err != nil {
			return err
		}
	}

	return nil
}

// Clear empties the buffer and resets the cursor. The glyph cache is kept.
func (e *Editor) Clear() {
	e.chars = nil
	e.cursor = Point{}
	e.log.Debug("document cleared")
}

// RuneCount pairs a rune with its number of occurrences.
type RuneCount struct {
	Rune  rune
	Count int
}

// Statistics summarises the buffer and the glyph cache behind it.
type Statistics struct {
	// Total is the number of stored characters (context records).
	Total int

	// Unique is the number of distinct runes in this buffer.
	Unique int

	// Glyphs is the number of shared glyphs in the cache, which may serve
	// other editors too.
	Glyphs int

	// Frequency counts occurrences per rune.
	Frequency map[rune]int
}

// SavedPercent is the share of context records that did not need their own
// glyph.
func (s Statistics) SavedPercent() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Total-s.Unique) / float64(s.Total) * 100
}

// Top returns the n most frequent runes, ties broken by rune order.
func (s Statistics) Top(n int) []RuneCount {
	out := make([]RuneCount, 0, len(s.Frequency))
	for r, c := range s.Frequency {
		out = append(out, RuneCount{Rune: r, Count: c})
	}
	slices.SortFunc(out, func(a, b RuneCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return int(a.Rune - b.Rune)
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}

	return out
}

// Statistics computes buffer statistics.
func (e *Editor) Statistics() Statistics {
	freq := make(map[rune]int)
	for _, c := range e.chars {
		freq[c.glyph.Rune()]++
	}

	return Statistics{
		Total:     len(e.chars),
		Unique:    len(freq),
		Glyphs:    e.glyphs.Count(),
		Frequency: freq,
	}
}
