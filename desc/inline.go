package desc

import "regexp"

// Alternatives are tried left to right at the leftmost matching offset, so
// bold wins over code, code over italic and italic over a link when two
// tokens start at the same byte.
var inlineRe = regexp.MustCompile(
	`\*\*(.+?)\*\*` +
		"|`(.+?)`" +
		`|\*(.+?)\*` +
		`|\[([^\]]*)\]\(([^)]*)\)`,
)

const (
	boldGroup = 1 + iota
	codeGroup
	italicGroup
	linkTextGroup
	linkURLGroup
)

// Spanify splits a single line into inline spans. Bold and italic bodies are
// parsed again; code and link contents are kept literally. Text with no
// markup comes back as a single Text span, and an empty line as nil.
func Spanify(line string) []Span {
	var spans []Span
	for line != "" {
		m := inlineRe.FindStringSubmatchIndex(line)
		if m == nil {
			break
		}

		if m[0] > 0 {
			spans = append(spans, Text(line[:m[0]]))
		}
		spans = append(spans, token(line, m))
		line = line[m[1]:]
	}

	if line != "" {
		spans = append(spans, Text(line))
	}
	return spans
}

func token(line string, m []int) Span {
	group := func(n int) (string, bool) {
		if m[2*n] < 0 {
			return "", false
		}
		return line[m[2*n]:m[2*n+1]], true
	}

	if s, ok := group(boldGroup); ok {
		return Bold(Spanify(s))
	}
	if s, ok := group(codeGroup); ok {
		return Code(s)
	}
	if s, ok := group(italicGroup); ok {
		return Italic(Spanify(s))
	}

	text, _ := group(linkTextGroup)
	url, _ := group(linkURLGroup)
	return Link{Text: text, URL: url}
}
