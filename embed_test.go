package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/to404hanga/online-judge-frontend-sub000/judge"
)

func TestProblemEmbed(t *testing.T) {
	p := judge.Problem{
		ID:          "1001",
		Title:       "A + B",
		Difficulty:  "easy",
		Tags:        []string{"math", "io"},
		Description: "# A + B\n\nPrint **a + b**.",
		URL:         "https://judge.example.com/problems/1001",
	}

	embed := problemEmbed(p, defaultMaxDescription)
	assert.Equal(t, "1001. A + B", embed.Title)
	assert.Equal(t, p.URL, embed.URL)
	assert.Equal(t, "__**A + B**__\n\nPrint **a + b**.", embed.Description)
	assert.Equal(t, p.URL+"\nDifficulty: easy\nTags: math, io", embed.Footer.Text)
}

func TestProblemEmbed_Empty(t *testing.T) {
	embed := problemEmbed(judge.Problem{ID: "7", Title: "Blank"}, defaultMaxDescription)
	assert.Equal(t, "No description provided.", embed.Description)
}

func TestProblemEmbed_Cut(t *testing.T) {
	p := judge.Problem{ID: "1", Title: "Long", Description: strings.Repeat("word ", 1000)}

	embed := problemEmbed(p, 1000)
	assert.Contains(t, embed.Footer.Text, "Only the first 1.0 kB of 5.0 kB were rendered.")
	assert.LessOrEqual(t, len(embed.Description), 4096)
}

func TestProblemEmbed_Limits(t *testing.T) {
	var tags []string
	for i := 0; i < 500; i++ {
		tags = append(tags, "tag")
	}
	p := judge.Problem{
		ID:    "9",
		Title: strings.Repeat("é", 300),
		Tags:  tags,
		URL:   "https://judge.example.com/problems/9",
	}

	embed := problemEmbed(p, defaultMaxDescription)
	assert.Equal(t, titleLimit, utf8.RuneCountInString(embed.Title))
	assert.True(t, strings.HasPrefix(embed.Title, "9. é"))
	assert.True(t, strings.HasSuffix(embed.Title, "…"))
	assert.Equal(t, footerLimit, utf8.RuneCountInString(embed.Footer.Text))
	assert.True(t, strings.HasPrefix(embed.Footer.Text, p.URL+"\nTags: tag, tag"))

	matches := matchesEmbed("x", []judge.Problem{{ID: "1", Title: p.Title, Summary: strings.Repeat("s", 2000)}})
	assert.Equal(t, titleLimit, utf8.RuneCountInString(matches.Fields[0].Name))
	assert.Equal(t, fieldLimit, utf8.RuneCountInString(matches.Fields[0].Value))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 3))
	assert.Equal(t, "ab…", clip("abcd", 3))
	assert.Equal(t, "éé…", clip("ééééé", 3))
}

func TestPreviewEmbed_Omitted(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("- item number with some padding text\n\n")
	}

	embed := previewEmbed(b.String(), defaultMaxDescription)
	assert.True(t, strings.HasSuffix(embed.Description, "*More description omitted*"))
	assert.LessOrEqual(t, len(embed.Description), 4096)
	assert.Nil(t, embed.Footer)
}

func TestMatchesEmbed(t *testing.T) {
	var matches []judge.Problem
	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		matches = append(matches, judge.Problem{ID: id, Title: "Graph " + id})
	}

	embed := matchesEmbed("graph", matches)
	assert.Equal(t, "Problems: 6 Results (showing 5)", embed.Title)
	assert.Len(t, embed.Fields, matchLimit)
	assert.Equal(t, "1. Graph 1", embed.Fields[0].Name)
	assert.True(t, strings.HasPrefix(embed.Fields[0].Value, "*No summary*"))
}
