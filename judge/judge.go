package judge

import (
	"strings"
)

type Problem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	titleLower string
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`

	Summary      string `json:"-"`
	summaryLower string

	// Description is only set on problems returned by Fetch.
	Description string `json:"description"`
	URL         string `json:"-"`
}

type MatchType uint8

const (
	NoMatch MatchType = iota
	MatchDesc
	MatchTitle
	MatchExact
)

// MatchAll returns problems matching keyword, title matches first. An exact
// ID match is returned on its own.
func MatchAll(problems []Problem, keyword string) (matches []Problem) {
	var desc []Problem
	for _, p := range problems {
		switch p.Match(keyword) {
		case MatchExact:
			return []Problem{p}
		case MatchTitle:
			matches = append(matches, p)
		case MatchDesc:
			desc = append(desc, p)
		}
	}
	return append(matches, desc...)
}

func (p Problem) Match(keyword string) MatchType {
	if strings.EqualFold(p.ID, strings.TrimSpace(keyword)) {
		return MatchExact
	}

	f := strings.Fields(strings.ToLower(keyword))
	if len(f) == 0 {
		return NoMatch
	}

	titleLower, summaryLower := p.titleLower, p.summaryLower
	if titleLower == "" {
		titleLower = strings.ToLower(p.Title)
	}
	if summaryLower == "" {
		summaryLower = strings.ToLower(p.Summary + " " + strings.Join(p.Tags, " "))
	}

	match := MatchDesc

	for _, s := range f {
		if strings.Contains(titleLower, s) {
			match = MatchTitle
			continue
		}
		if strings.Contains(summaryLower, s) {
			continue
		}
		return NoMatch
	}
	return match
}

func (p *Problem) index() {
	p.titleLower = strings.ToLower(p.Title)
	p.summaryLower = strings.ToLower(p.Summary + " " + strings.Join(p.Tags, " "))
}
