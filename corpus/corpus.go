// Package corpus turns raw extracted text into the filtered word sequence
// the correction engines and copy audits operate on.
package corpus

import (
	"regexp"
	"strings"

	"github.com/pagelens/pagelens/models"
)

// wordPattern matches maximal runs of 2+ Latin letters. Digits, punctuation
// and non-Latin scripts break a run.
var wordPattern = regexp.MustCompile(`[A-Za-z]{2,}`)

// Tokenize extracts words from text and applies the noise filter: a word is
// dropped if it is entirely lowercase and no longer than 3 letters. Short
// connectives ("the", "and", "of") disappear while proper nouns and acronyms
// survive because of their casing or length.
//
// Tokenize is idempotent: running it over an already-filtered corpus yields
// the same corpus.
func Tokenize(text string) models.Corpus {
	raw := wordPattern.FindAllString(text, -1)
	if raw == nil {
		raw = []string{}
	}

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) <= 3 && w == strings.ToLower(w) {
			continue
		}
		words = append(words, w)
	}

	return models.Corpus{Raw: raw, Words: words}
}
