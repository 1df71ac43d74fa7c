// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil turns catalog free-text fields into single-line plain text.
package textutil

import (
	"html"
	"regexp"
	"strings"
)

// tagPattern matches one HTML tag, non-greedily and without attribute
// parsing. Anything between an opening "<" and the next ">" counts.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// spaceRun matches one or more consecutive whitespace characters.
var spaceRun = regexp.MustCompile(`\s+`)

// Sanitize strips HTML markup from s and returns trimmed, single-line plain
// text. Tags are replaced with a space before entities are decoded, so an
// escaped tag like &lt;b&gt; survives as literal text. Carriage returns and
// line feeds become spaces and whitespace runs collapse to a single space.
// An empty input yields an empty string.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
