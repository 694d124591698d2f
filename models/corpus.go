package models

import "strings"

// Corpus is the filtered word sequence derived from one analysis unit
// (a rendered page or pasted text). It is created per request and never
// persisted.
type Corpus struct {
	// Raw is every extracted word in source order, before filtering.
	Raw []string

	// Words is the filtered list: all-lowercase words of length <= 3 are
	// dropped, source order preserved. Proper nouns and acronyms survive
	// because of their casing or length.
	Words []string
}

// WordCount is the number of words after filtering.
func (c Corpus) WordCount() int {
	return len(c.Words)
}

// Joined returns the filtered words as a single space-separated string,
// the form the dictionary corrector checks.
func (c Corpus) Joined() string {
	return strings.Join(c.Words, " ")
}

// Lines returns the filtered words one per line, the form shown back to
// the caller as the extracted text sample.
func (c Corpus) Lines() string {
	return strings.Join(c.Words, "\n")
}

// CorrectionEntry is one (wrong, correct) spelling or style fix suggested
// by a corrector. The two sides are never case-insensitively equal.
type CorrectionEntry struct {
	Wrong   string `json:"wrong"`
	Correct string `json:"correct"`
}

// CorrectionSet holds the two correctors' outputs side by side. The lists
// are intentionally not unioned: each engine has different false-positive
// characteristics and the report shows both for human judgment.
type CorrectionSet struct {
	Dictionary []CorrectionEntry `json:"dictionary"`
	Model      []CorrectionEntry `json:"model"`
}
