// Package textutils provides the text cleaning helpers shared by the schema
// normalizer, cleaner and classifier.
package textutils

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// trailingNoisePatterns match reference-number artifacts banks append to
// descriptions. They are stripped from the end of standardized descriptions.
var trailingNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bref\.?\s?#?\s?\d+$`),
	regexp.MustCompile(`(?i)\btransaction\s?#?\d+$`),
	regexp.MustCompile(`\b\d{4,}$`),
}

// CleanCell normalizes a raw string cell: non-breaking spaces become regular
// spaces, non-printable characters are removed and internal whitespace is
// collapsed to single spaces.
func CleanCell(value string) string {
	value = strings.ReplaceAll(value, " ", " ")
	value = strings.TrimSpace(value)
	value = whitespaceRe.ReplaceAllString(value, " ")

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeHeader lower-cases and whitespace-collapses a column header so it
// can be compared against candidate names.
func NormalizeHeader(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	return whitespaceRe.ReplaceAllString(header, " ")
}

// StandardizeDescription trims a description, collapses whitespace, removes
// stray trailing punctuation and strips trailing reference-number noise like
// "REF# 12345", "TRANSACTION #9321" or a bare run of four or more digits.
func StandardizeDescription(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.Trim(cleaned, ". ")
	for _, pattern := range trailingNoisePatterns {
		cleaned = strings.TrimSpace(pattern.ReplaceAllString(cleaned, ""))
	}
	return cleaned
}

// NormalizeDescription produces the canonical matching form of a description:
// lower-cased, whitespace-collapsed and trimmed. Both the keyword table and
// the enrichment cache are keyed by this form.
func NormalizeDescription(text string) string {
	lowered := strings.ToLower(text)
	lowered = whitespaceRe.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(lowered)
}

var tokenSplitRe = regexp.MustCompile(`[^\w&]+`)

// Tokenize splits a description on non-word characters, preserving '&' so
// names like "h&m" survive as single tokens. Empty tokens are dropped.
func Tokenize(text string) []string {
	parts := tokenSplitRe.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
