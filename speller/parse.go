package speller

import (
	"regexp"
	"strings"

	"github.com/pagelens/pagelens/models"
)

// correctionLine is the only shape accepted from the model oracle: a single
// word, an arrow, and a correction that may contain internal spaces, hyphens
// or apostrophes.
var correctionLine = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z'-]*)\s*->\s*([A-Za-z][A-Za-z\s'-]*)$`)

// ParseCorrections runs the strict grammar over each line of raw model
// output and tags it as a valid correction entry or a rejected line.
// A line is rejected when it does not match the `word -> phrase` shape, or
// when both sides are case-insensitively identical — the model is not
// permitted to "correct" a word to itself.
func ParseCorrections(raw string) (entries []models.CorrectionEntry, rejected []string) {
	entries = []models.CorrectionEntry{}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := correctionLine.FindStringSubmatch(line)
		if m == nil {
			rejected = append(rejected, line)
			continue
		}
		wrong, correct := m[1], strings.TrimSpace(m[2])
		if strings.EqualFold(wrong, correct) {
			rejected = append(rejected, line)
			continue
		}
		entries = append(entries, models.CorrectionEntry{Wrong: wrong, Correct: correct})
	}
	return entries, rejected
}
