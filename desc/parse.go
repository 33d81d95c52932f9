package desc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxHeadingLevel is the deepest heading recognised. Lines starting with
// more '#' characters than this are not headings and stay paragraph text.
const maxHeadingLevel = 3

const fenceMarker = "```"

var (
	lineBreak  = regexp.MustCompile(`\r?\n`)
	headingRe  = regexp.MustCompile(`^#{1,` + strconv.Itoa(maxHeadingLevel) + `}\s+`)
	tableRowRe = regexp.MustCompile(`^\|.*\|$`)
	dividerRe  = regexp.MustCompile(`^\|?[:\-|\s]+\|?$`)
	listItemRe = regexp.MustCompile(`^-+\s+.+`)
	bulletRe   = regexp.MustCompile(`^-+\s+`)
)

// A blockRule tries to start a block at lines[i]. It returns the node and the
// number of lines it consumed, or 0 when lines[i] does not start its block.
type blockRule func(lines []string, i int) (Node, int)

// blockRules run in priority order. Blank lines are handled before any rule.
var blockRules = []blockRule{
	fence,
	heading,
	table,
	list,
}

// Parse converts a description into block nodes in source order. Empty or
// whitespace-only input yields a single paragraph holding Placeholder; any
// other input yields at least one node. Parse never fails.
//
// Parse keeps no state between calls and is safe for concurrent use.
// Callers handling untrusted input should bound its size first, see
// ParseLimited.
func Parse(text string) []Node {
	if isBlank(text) {
		return placeholder()
	}

	lines := lineBreak.Split(text, -1)

	var nodes []Node
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		p := make(Paragraph, len(para))
		for i, line := range para {
			p[i] = Spanify(line)
		}
		nodes = append(nodes, p)
		para = nil
	}

	for i := 0; i < len(lines); {
		if isBlank(lines[i]) {
			flush()
			i++
			continue
		}

		n, consumed := startBlock(lines, i)
		if consumed == 0 {
			para = append(para, lines[i])
			i++
			continue
		}

		flush()
		nodes = append(nodes, n)
		i += consumed
	}
	flush()

	if len(nodes) == 0 {
		return placeholder()
	}
	return nodes
}

// ParseLimited parses at most max bytes of text, cutting at a rune boundary.
// It reports whether anything was cut. A max of zero or less means no limit.
func ParseLimited(text string, max int) ([]Node, bool) {
	if max <= 0 || len(text) <= max {
		return Parse(text), false
	}

	cut := max
	for k := 0; k < utf8.UTFMax && cut > 0 && !utf8.RuneStart(text[cut]); k++ {
		cut--
	}
	return Parse(text[:cut]), true
}

func startBlock(lines []string, i int) (Node, int) {
	for _, rule := range blockRules {
		if n, consumed := rule(lines, i); consumed > 0 {
			return n, consumed
		}
	}
	return nil, 0
}

// fence consumes everything up to the closing fence, or to the end of input
// when the block is never closed.
func fence(lines []string, i int) (Node, int) {
	open := strings.TrimSpace(lines[i])
	if !strings.HasPrefix(open, fenceMarker) {
		return nil, 0
	}

	j := i + 1
	for j < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[j]), fenceMarker) {
		j++
	}

	block := CodeBlock{
		Language: strings.TrimSpace(strings.TrimLeft(open, "`")),
		Content:  strings.Join(lines[i+1:j], "\n"),
	}
	if j == len(lines) {
		return block, j - i
	}
	return block, j - i + 1
}

func heading(lines []string, i int) (Node, int) {
	line := strings.TrimSpace(lines[i])
	marker := headingRe.FindString(line)
	if marker == "" {
		return nil, 0
	}

	return Heading{
		Level: strings.Count(marker, "#"),
		Spans: Spanify(strings.TrimSpace(line[len(marker):])),
	}, 1
}

// table needs a divider row after the header, optionally separated by blank
// lines. Without one the header line is left to the paragraph.
func table(lines []string, i int) (Node, int) {
	if !tableRowRe.MatchString(strings.TrimSpace(lines[i])) {
		return nil, 0
	}

	j := i + 1
	for j < len(lines) && isBlank(lines[j]) {
		j++
	}
	if j == len(lines) || !dividerRe.MatchString(strings.TrimSpace(lines[j])) {
		return nil, 0
	}

	t := Table{Header: cells(lines[i])}
	for j++; j < len(lines); j++ {
		if !tableRowRe.MatchString(strings.TrimSpace(lines[j])) {
			break
		}
		t.Rows = append(t.Rows, fit(cells(lines[j]), len(t.Header)))
	}
	return t, j - i
}

func cells(line string) [][]Span {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	split := strings.Split(line, "|")
	row := make([][]Span, len(split))
	for i, cell := range split {
		row[i] = Spanify(strings.TrimSpace(cell))
	}
	return row
}

// fit drops cells past width and pads missing ones with empty span lists.
func fit(row [][]Span, width int) [][]Span {
	out := make([][]Span, width)
	copy(out, row)
	return out
}

func list(lines []string, i int) (Node, int) {
	var items List

	j := i
	for ; j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		if !listItemRe.MatchString(line) {
			break
		}
		bullet := bulletRe.FindString(line)
		items = append(items, Spanify(line[len(bullet):]))
	}

	if len(items) == 0 {
		return nil, 0
	}
	return items, j - i
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func placeholder() []Node {
	return []Node{Paragraph{{Text(Placeholder)}}}
}
