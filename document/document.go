// SPDX-License-Identifier: MIT
//
// Package document provides a typed document prototype with an explicit
// split between value fields (Title, Content, Author) and reference fields
// (Tags, Meta, Sections, Source).
//
// Clone policy:
//
//	Shallow - Tags, Meta, Sections and Source are aliased.
//	Deep    - Tags, Meta and Sections are duplicated. Source is an external
//	          handle with no copy strategy, so a Deep clone of a document
//	          with a non-nil Source fails with *clone.NotCloneableError
//	          (Field "Source"). Detach the source first if an independent
//	          copy is required.
package document

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/protokit/clone"
)

// Metadata is owned by a Document and duplicated by Deep clones.
type Metadata struct {
	Version  int
	Language string
	Category string
}

// Section is one titled block of content.
type Section struct {
	Title   string
	Content string
	Order   int
}

// Document is a cloneable, patchable document prototype.
type Document struct {
	Title   string
	Content string
	Author  string

	Tags     []string
	Meta     *Metadata
	Sections []Section

	// Source is the handle the document was read from, if any.
	Source clone.Resource
}

// New returns a document with version-1 English metadata.
func New(title, content, author string) *Document {
	return &Document{
		Title:   title,
		Content: content,
		Author:  author,
		Meta:    &Metadata{Version: 1, Language: "en", Category: "general"},
	}
}

// Clone implements clone.Cloneable.
func (d *Document) Clone(depth clone.Depth) (clone.Cloneable, error) {
	out := *d
	if depth != clone.Deep {
		return &out, nil
	}
	if d.Source != nil {
		return nil, clone.NotCloneable("Source", d.Source)
	}
	out.Tags = slices.Clone(d.Tags)
	out.Sections = slices.Clone(d.Sections)
	if d.Meta != nil {
		m := *d.Meta
		out.Meta = &m
	}

	return &out, nil
}

// SetField implements prototype.Patcher for the string fields of the
// document and its metadata.
func (d *Document) SetField(field string, value any) error {
	if !slices.Contains(patchable, field) {
		return clone.UnknownField(field)
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("document: field %q wants a string, got %T", field, value)
	}
	switch field {
	case "title":
		d.Title = s
	case "content":
		d.SetContent(s)
	case "author":
		d.Author = s
	case "language":
		m := d.meta()
		m.Language = s
		d.Meta = m
	case "category":
		m := d.meta()
		m.Category = s
		d.Meta = m
	}

	return nil
}

var patchable = []string{"title", "content", "author", "language", "category"}

// SetContent replaces the body and bumps the metadata version.
func (d *Document) SetContent(content string) {
	d.Content = content
	m := d.meta()
	m.Version++
	d.Meta = m
}

// meta returns a private copy of Meta. Document methods never write through
// Meta in place, so patching a Shallow clone leaves its source untouched.
func (d *Document) meta() *Metadata {
	if d.Meta == nil {
		return &Metadata{}
	}
	m := *d.Meta

	return &m
}

// AddTag appends a tag.
func (d *Document) AddTag(tag string) {
	d.Tags = append(d.Tags, tag)
}

// AddSection appends a section numbered from 1.
func (d *Document) AddSection(title, content string) {
	d.Sections = append(d.Sections, Section{Title: title, Content: content, Order: len(d.Sections) + 1})
}

// String implements fmt.Stringer.
func (d *Document) String() string {
	version := 0
	if d.Meta != nil {
		version = d.Meta.Version
	}

	return fmt.Sprintf("Document[title=%q author=%q tags=%v sections=%d v%d]",
		d.Title, d.Author, d.Tags, len(d.Sections), version)
}
