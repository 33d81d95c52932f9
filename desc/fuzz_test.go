package desc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"",
		"# a\n## b\n### c\n#### d",
		"**b** *i* `c` [l](u)",
		"```\nunterminated",
		"|a|b|\n|-|-|\n|1|\n|1|2|3|",
		"- a\n-- b\n- ",
		"*a**b*c**",
		"\xff\xfe**\x80*",
		"\r\n\r\n|x|\r\n\r\n|:-:|",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		nodes := Parse(s)
		if len(nodes) == 0 {
			t.Fatalf("Parse(%q) returned no nodes", s)
		}
		for _, n := range nodes {
			if n == nil {
				t.Fatalf("Parse(%q) returned a nil node", s)
			}
			if tb, ok := n.(Table); ok {
				for _, row := range tb.Rows {
					if len(row) != len(tb.Header) {
						t.Fatalf("Parse(%q): row has %d cells, header %d", s, len(row), len(tb.Header))
					}
				}
			}
			Markdown(n)
		}

		if limited, _ := ParseLimited(s, 64); len(limited) == 0 {
			t.Fatalf("ParseLimited(%q) returned no nodes", s)
		}

		md, _ := Render(nodes, 256)
		if len(md) > 256 {
			t.Fatalf("Render(%q) produced %d bytes", s, len(md))
		}
		if utf8.ValidString(s) && !utf8.ValidString(md) {
			t.Fatalf("Render(%q) produced invalid UTF-8", s)
		}
	})
}

// Code block content must survive byte for byte, whatever it contains.
func FuzzCodeBlockContent(f *testing.F) {
	f.Add("**x** `y` # z\n- w")
	f.Add("|a|\n|-|")

	f.Fuzz(func(t *testing.T, body string) {
		if strings.Contains(body, "```") || strings.ContainsAny(body, "\r") {
			t.Skip()
		}
		nodes := Parse("```\n" + body + "\n```")
		if len(nodes) != 1 {
			t.Fatalf("got %d nodes", len(nodes))
		}
		cb, ok := nodes[0].(CodeBlock)
		if !ok {
			t.Fatalf("got %T", nodes[0])
		}
		if cb.Content != body {
			t.Fatalf("content %q, want %q", cb.Content, body)
		}
	})
}
