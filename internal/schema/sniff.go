package schema

import "strings"

// sniffLimit bounds how much of the decoded file the delimiter sniffer
// inspects.
const sniffLimit = 4096

// candidateDelimiters are tried in order; the order is also the preference
// on equal scores.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// DetectDelimiter picks the most plausible delimiter from the first few
// lines of the sample. For each candidate it counts occurrences outside
// quoted sections per line; a delimiter that appears a consistent, non-zero
// number of times on every inspected line scores highest. Comma is the
// default when sniffing is inconclusive.
func DetectDelimiter(sample string) rune {
	if len(sample) > sniffLimit {
		sample = sample[:sniffLimit]
	}

	lines := sampleLines(sample, 10)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := 0
	for _, delim := range candidateDelimiters {
		score := scoreDelimiter(lines, delim)
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}
	return best
}

// scoreDelimiter returns 0 when the delimiter is absent or inconsistent
// across lines, otherwise a score favoring higher per-line counts.
func scoreDelimiter(lines []string, delim rune) int {
	counts := make([]int, 0, len(lines))
	for _, line := range lines {
		counts = append(counts, countUnquoted(line, delim))
	}

	first := counts[0]
	if first == 0 {
		return 0
	}
	consistent := true
	for _, c := range counts[1:] {
		if c != first {
			consistent = false
			break
		}
	}
	if consistent {
		return first * 10
	}
	// Inconsistent counts can still indicate the right delimiter when every
	// line contains it at least once (ragged exports are common).
	for _, c := range counts {
		if c == 0 {
			return 0
		}
	}
	return first
}

// countUnquoted counts delimiter occurrences outside double-quoted sections.
func countUnquoted(line string, delim rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			count++
		}
	}
	return count
}

func sampleLines(sample string, max int) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == max {
			break
		}
	}
	return lines
}
