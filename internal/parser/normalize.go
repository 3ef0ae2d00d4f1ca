package parser

import "strings"

// Normalize cleans raw extracted text into a canonical line sequence: every
// line is trimmed, non-breaking spaces and form feeds are converted, and runs
// of blank lines collapse to a single empty separator. Normalizing an already
// normalized sequence returns it unchanged.
func Normalize(raw string) []string {
	if raw == "" {
		return nil
	}
	cleaned := strings.NewReplacer(
		"\r\n", "\n",
		"\r", "\n",
		"\f", "\n",
		" ", " ",
		"​", "",
		"\t", " ",
	).Replace(raw)

	return NormalizeLines(strings.Split(cleaned, "\n"))
}

// NormalizeLines applies the same canonicalization to an existing line slice.
func NormalizeLines(lines []string) []string {
	var out []string
	blank := true // leading blanks are dropped entirely
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank {
				out = append(out, "")
				blank = true
			}
			continue
		}
		out = append(out, line)
		blank = false
	}
	// no trailing separator
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
