package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	problemsPath = "/problems"
	apiPath      = "/api/problems/"
)

var ErrNotFound = errors.New("problem not found")

// Problems scrapes the judge's public problem index. Descriptions are not
// part of the index; use Fetch for those.
func Problems(ctx context.Context, client *http.Client, base string) ([]Problem, error) {
	base = strings.TrimSuffix(base, "/")

	res, err := get(ctx, client, base+problemsPath)
	if err != nil {
		return nil, fmt.Errorf("could not get problems: %w", err)
	}
	defer res.Body.Close()

	document, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	var problems []Problem
	document.Find("tr.problem").Each(func(_ int, s *goquery.Selection) {
		a := s.Find(".title a")

		problem := Problem{
			ID:         strings.TrimSpace(s.Find(".id").Text()),
			Title:      strings.TrimSpace(a.Text()),
			Difficulty: strings.TrimSpace(s.Find(".difficulty").Text()),
			Summary:    cellText(s.Find(".summary")),
		}
		if problem.ID == "" {
			return
		}

		s.Find(".tag").Each(func(_ int, tag *goquery.Selection) {
			if t := strings.TrimSpace(tag.Text()); t != "" {
				problem.Tags = append(problem.Tags, t)
			}
		})

		problem.URL = problemURL(base, a.AttrOr("href", ""), problem.ID)
		problem.index()
		problems = append(problems, problem)
	})

	return problems, nil
}

// Fetch loads a single problem, including its raw description, from the
// judge API.
func Fetch(ctx context.Context, client *http.Client, base, id string) (Problem, error) {
	base = strings.TrimSuffix(base, "/")

	res, err := get(ctx, client, base+apiPath+url.PathEscape(id))
	if err != nil {
		return Problem{}, fmt.Errorf("could not get problem %s: %w", id, err)
	}
	defer res.Body.Close()

	var problem Problem
	if err := json.NewDecoder(res.Body).Decode(&problem); err != nil {
		return Problem{}, fmt.Errorf("could not decode problem %s: %w", id, err)
	}
	if problem.ID == "" {
		problem.ID = id
	}

	problem.URL = problemURL(base, "", problem.ID)
	problem.index()
	return problem, nil
}

func get(ctx context.Context, client *http.Client, uri string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		res.Body.Close()
		return nil, ErrNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		res.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	return res, nil
}

func problemURL(base, href, id string) string {
	switch {
	case href == "":
		return base + problemsPath + "/" + url.PathEscape(id)
	case strings.HasPrefix(href, "/"):
		return base + href
	}
	return href
}

// cellText flattens a table cell, turning <br> into line breaks.
func cellText(s *goquery.Selection) string {
	var b strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(strings.ReplaceAll(c.Data, "\n", " "))
			case html.ElementNode:
				if c.Data == "br" {
					b.WriteRune('\n')
					continue
				}
				walk(c)
			}
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
