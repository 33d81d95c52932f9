package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/to404hanga/online-judge-frontend-sub000/desc"
	"github.com/to404hanga/online-judge-frontend-sub000/judge"
)

// Discord counts embed limits in characters.
const (
	descLimit   = 3800
	titleLimit  = 256
	footerLimit = 2048
	fieldLimit  = 1024
	matchLimit  = 5

	accentColor = 0x007D9C
)

func problemEmbed(p judge.Problem, maxBytes int) discord.Embed {
	md, note := description(p.Description, maxBytes)

	footer := []string{p.URL}
	if p.Difficulty != "" {
		footer = append(footer, "Difficulty: "+p.Difficulty)
	}
	if len(p.Tags) > 0 {
		footer = append(footer, "Tags: "+strings.Join(p.Tags, ", "))
	}
	if note != "" {
		footer = append(footer, note)
	}

	return discord.Embed{
		Title:       clip(fmt.Sprintf("%s. %s", p.ID, p.Title), titleLimit),
		URL:         p.URL,
		Description: md,
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: clip(strings.Join(footer, "\n"), footerLimit),
		},
	}
}

func previewEmbed(text string, maxBytes int) discord.Embed {
	md, note := description(text, maxBytes)

	embed := discord.Embed{
		Title:       "Preview",
		Description: md,
		Color:       accentColor,
	}
	if note != "" {
		embed.Footer = &discord.EmbedFooter{Text: note}
	}
	return embed
}

func matchesEmbed(query string, matches []judge.Problem) discord.Embed {
	var fields []discord.EmbedField

	for i, p := range matches {
		if i == matchLimit {
			break
		}

		summary := p.Summary
		if summary == "" {
			summary = "*No summary*"
		}
		fields = append(fields, discord.EmbedField{
			Name:  clip(fmt.Sprintf("%s. %s", p.ID, p.Title), titleLimit),
			Value: clip(fmt.Sprintf("%s\n%s", summary, p.URL), fieldLimit),
		})
	}

	title := fmt.Sprintf("Problems: %d Results", len(matches))
	if len(matches) > matchLimit {
		title = fmt.Sprintf("Problems: %d Results (showing %d)", len(matches), matchLimit)
	}

	return discord.Embed{
		Title:       title,
		Description: fmt.Sprintf("Search Term: %q\nSearch for an ID to view a problem.", query),
		Fields:      fields,
		Color:       accentColor,
	}
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}

// description renders text for an embed body. The note, when not empty,
// says what was left out.
func description(text string, maxBytes int) (md, note string) {
	nodes, cut := desc.ParseLimited(text, maxBytes)

	md, more := desc.Render(nodes, descLimit)
	if more {
		md += "\n\n*More description omitted*"
	}

	if cut {
		note = fmt.Sprintf("Only the first %s of %s were rendered.",
			humanize.Bytes(uint64(maxBytes)), humanize.Bytes(uint64(len(text))))
	}
	return md, note
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
