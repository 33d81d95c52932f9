// Package desc turns the free-form text of a problem description into a
// sequence of block nodes (paragraphs, headings, code blocks, lists and
// tables) holding inline spans (text, bold, italic, code and links).
//
// The accepted syntax is a small markdown-like subset. Parsing never fails:
// malformed markup degrades to literal text.
package desc

import "strings"

// Placeholder is the text of the single paragraph produced for empty or
// whitespace-only input.
const Placeholder = "No description provided."

// Span is inline content. The set of implementations is closed: Text, Code,
// Bold, Italic and Link.
type Span interface {
	// Plain returns the span's text without any formatting.
	Plain() string
	span()
}

// Node is block content. The set of implementations is closed: Paragraph,
// Heading, CodeBlock, List and Table.
type Node interface {
	// Plain returns the node's text without any formatting.
	Plain() string
	node()
}

type (
	Text   string
	Code   string
	Bold   []Span
	Italic []Span
)

type Link struct {
	Text string
	URL  string
}

// Paragraph holds one span list per source line.
type Paragraph [][]Span

type Heading struct {
	Level int
	Spans []Span
}

// CodeBlock holds the raw lines between two fences. Language is empty when
// the opening fence carries no tag.
type CodeBlock struct {
	Language string
	Content  string
}

// List holds one span list per bullet.
type List [][]Span

// Table rows always have exactly len(Header) cells.
type Table struct {
	Header [][]Span
	Rows   [][][]Span
}

func (Text) span()   {}
func (Code) span()   {}
func (Bold) span()   {}
func (Italic) span() {}
func (Link) span()   {}

func (Paragraph) node() {}
func (Heading) node()   {}
func (CodeBlock) node() {}
func (List) node()      {}
func (Table) node()     {}

func (t Text) Plain() string   { return string(t) }
func (c Code) Plain() string   { return string(c) }
func (b Bold) Plain() string   { return plain(b) }
func (i Italic) Plain() string { return plain(i) }
func (l Link) Plain() string   { return l.Text }

func (p Paragraph) Plain() string { return plainLines(p, "\n") }
func (h Heading) Plain() string   { return plain(h.Spans) }
func (c CodeBlock) Plain() string { return c.Content }
func (l List) Plain() string      { return plainLines(l, "\n") }

func (t Table) Plain() string {
	var b strings.Builder
	b.WriteString(plainLines(t.Header, "\t"))
	for _, row := range t.Rows {
		b.WriteRune('\n')
		b.WriteString(plainLines(row, "\t"))
	}
	return b.String()
}

func plain(spans []Span) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Plain()
	}

	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Plain())
	}
	return b.String()
}

func plainLines(lines [][]Span, sep string) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = plain(l)
	}
	return strings.Join(parts, sep)
}
