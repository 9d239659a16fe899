package model

import (
	"net/url"
	"strings"
	"unicode"
)

// Link is one extracted hyperlink with a human-readable label.
type Link struct {
	URL   string `json:"url" yaml:"url"`
	Label string `json:"label" yaml:"label"`
}

// ParseLinks splits a whitespace- or comma-separated string of URL-like
// tokens into links, preserving token order. A token that parses as an
// absolute URL gets its hostname (minus a leading "www.") as the label.
// Tokens that fail strict parsing — including scheme-less ones like
// "www.example.org" — are kept verbatim as both URL and label; the function
// never drops a token and never fails.
func ParseLinks(s string) []Link {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil
	}

	links := make([]Link, 0, len(tokens))
	for _, tok := range tokens {
		links = append(links, Link{URL: tok, Label: linkLabel(tok)})
	}
	return links
}

func linkLabel(tok string) string {
	u, err := url.Parse(tok)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return tok
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
