package billparse

import (
	"math"
	"strconv"
	"strings"
)

// numberToken is a numeric substring found on a line, kept together with its
// raw text and position. The raw form matters: the large-lone-number guard
// needs to know whether the original token carried a decimal point or a
// thousands separator, which the parsed value no longer shows.
type numberToken struct {
	raw   string
	value float64
	start int
	end   int
}

// cleanNumberToken strips everything that is not a digit, dot or comma,
// treats commas purely as thousands separators, and parses the remainder.
// The second return is false when nothing parseable is left.
func cleanNumberToken(tok string) (float64, bool) {
	var b strings.Builder
	for _, r := range tok {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// extractNumberTokens scans a line left to right for numeric substrings,
// cleans each and keeps only the ones that parse. Order of appearance is
// preserved.
func extractNumberTokens(line string) []numberToken {
	var toks []numberToken
	for _, loc := range numberRe.FindAllStringIndex(line, -1) {
		raw := line[loc[0]:loc[1]]
		v, ok := cleanNumberToken(raw)
		if !ok {
			continue
		}
		toks = append(toks, numberToken{raw: raw, value: v, start: loc[0], end: loc[1]})
	}
	return toks
}

// isPercentToken reports whether the token is immediately followed (spaces
// allowed) by a percent sign on its line.
func isPercentToken(line string, tok numberToken) bool {
	for i := tok.end; i < len(line); i++ {
		if line[i] == ' ' {
			continue
		}
		return line[i] == '%'
	}
	return false
}

// round2 rounds to currency minor-unit precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
