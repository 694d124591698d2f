package audit

import (
	"errors"
	"regexp"
	"strings"
)

// sentenceEnd splits text into sentences on runs of terminal punctuation.
var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// letterRun extracts word candidates for syllable counting.
var letterRun = regexp.MustCompile(`[A-Za-z]+`)

// ErrNoText is returned when a readability grade cannot be computed.
var ErrNoText = errors.New("no scorable text")

// FleschKincaidGrade computes the Flesch-Kincaid grade level of text:
//
//	0.39 x (words/sentences) + 11.8 x (syllables/words) - 15.59
//
// Text with no words is unscorable and returns ErrNoText; callers default
// such input to "not readable".
func FleschKincaidGrade(text string) (float64, error) {
	words := letterRun.FindAllString(text, -1)
	if len(words) == 0 {
		return 0, ErrNoText
	}

	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	grade := 0.39*(float64(len(words))/float64(sentences)) +
		11.8*(float64(syllables)/float64(len(words))) - 15.59
	return grade, nil
}

// countSentences counts terminal-punctuation runs, treating unpunctuated
// text as a single sentence.
func countSentences(text string) int {
	n := len(sentenceEnd.FindAllString(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// countSyllables approximates syllables as vowel groups, discounting a
// silent trailing 'e'. Every word counts at least one.
func countSyllables(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range w {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
