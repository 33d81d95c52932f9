package desc

import (
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

const bullet = "  • "

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	"`", "\\`",
	`|`, `\|`,
)

// Render joins the Discord markdown of nodes, stopping before the output
// would grow past limit bytes. It reports whether any node was left out. A
// node too large to fit on its own is cut at limit. A limit of zero or less
// means no limit.
func Render(nodes []Node, limit int) (string, bool) {
	var b strings.Builder
	var more bool

	for _, n := range nodes {
		md := Markdown(n)
		if limit > 0 && b.Len()+len(md) > limit {
			if b.Len() == 0 {
				b.WriteString(cutNode(n, md, limit))
			}
			more = true
			break
		}
		b.WriteString(md)
		b.WriteRune('\n')
	}

	return strings.TrimRight(b.String(), "\n"), more
}

// Markdown renders a single node as Discord markdown. Nodes of a type it does
// not know are rendered as their plain text.
func Markdown(n Node) string {
	switch n := n.(type) {
	case nil:
		return ""

	case Paragraph:
		lines := make([]string, len(n))
		for i, line := range n {
			lines[i] = spans(line)
		}
		return strings.Join(lines, "\n") + "\n"

	case Heading:
		text := spans(n.Spans)
		switch n.Level {
		case 1:
			return "__**" + text + "**__\n"
		case 2:
			return "**" + text + "**\n"
		}
		return "__" + text + "__\n"

	case CodeBlock:
		return fenceMarker + n.Language + "\n" + n.Content + "\n" + fenceMarker + "\n"

	case List:
		var b strings.Builder
		for _, item := range n {
			b.WriteString(bullet)
			b.WriteString(spans(item))
			b.WriteRune('\n')
		}
		return b.String()

	case Table:
		return tableMarkdown(n)
	}

	return escaper.Replace(n.Plain()) + "\n"
}

// SpanMarkdown renders a single span as Discord markdown. Spans of a type it
// does not know are rendered as their plain text.
func SpanMarkdown(s Span) string {
	switch s := s.(type) {
	case nil:
		return ""
	case Text:
		return escaper.Replace(string(s))
	case Code:
		return code(string(s))
	case Bold:
		return "**" + spans(s) + "**"
	case Italic:
		return "*" + spans(s) + "*"
	case Link:
		return "[" + escaper.Replace(s.Text) + "](" + s.URL + ")"
	}
	return escaper.Replace(s.Plain())
}

func spans(ss []Span) string {
	switch len(ss) {
	case 0:
		return ""
	case 1:
		return SpanMarkdown(ss[0])
	}

	var b strings.Builder
	for _, s := range ss {
		b.WriteString(SpanMarkdown(s))
	}
	return b.String()
}

func code(c string) string {
	if strings.Contains(c, "`") {
		return "`` " + c + " ``"
	}
	return "`" + c + "`"
}

// Discord has no tables, so they are laid out as aligned columns inside a
// code block.
func tableMarkdown(t Table) string {
	var b strings.Builder
	b.WriteString(fenceMarker + "\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	writeRow(w, t.Header)

	divider := make([]string, len(t.Header))
	for i, cell := range t.Header {
		n := utf8.RuneCountInString(cellText(cell))
		if n < 3 {
			n = 3
		}
		divider[i] = strings.Repeat("-", n)
	}
	w.Write([]byte(strings.Join(divider, "\t") + "\n"))

	for _, row := range t.Rows {
		writeRow(w, row)
	}
	w.Flush()

	b.WriteString(fenceMarker + "\n")
	return b.String()
}

func writeRow(w *tabwriter.Writer, row [][]Span) {
	text := make([]string, len(row))
	for i, cell := range row {
		text[i] = cellText(cell)
	}
	w.Write([]byte(strings.Join(text, "\t") + "\n"))
}

func cellText(cell []Span) string {
	return strings.NewReplacer("\t", " ", "`", "'").Replace(plain(cell))
}

// cutNode cuts the markdown md of n to at most limit bytes. A cut code
// block keeps its closing fence; when not even the opening line fits, the
// plain text is cut instead.
func cutNode(n Node, md string, limit int) string {
	if !strings.HasPrefix(md, fenceMarker) {
		return cut(md, limit)
	}

	room := limit - len("\n"+fenceMarker)
	if room <= strings.IndexByte(md, '\n') {
		return strings.TrimRight(cut(escaper.Replace(n.Plain()), limit), `\`)
	}
	return strings.TrimRight(cut(md, room), "\n") + "\n" + fenceMarker
}

func cut(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
