package audit

import (
	"regexp"
	"strings"

	"github.com/pagelens/pagelens/models"
)

// headlinePattern matches a line that starts with a capital letter and is at
// most 121 characters long — a headline-shaped sentence.
var headlinePattern = regexp.MustCompile(`(?m)^[A-Z][^\n]{0,120}$`)

// ctaVerbs is the fixed call-to-action verb set for copy.
var ctaVerbs = []string{"get", "start", "book"}

// jargonWords is the fixed corporate-jargon set.
var jargonWords = []string{"leverage", "synergy", "stakeholder", "paradigm"}

// maxReadableGrade is the Flesch-Kincaid grade level above which copy is
// considered hard to read.
const maxReadableGrade = 8.0

// RunCopy evaluates copywriting quality over the extracted text. It is the
// only module that runs for raw-text input.
func RunCopy(text string) *models.AuditResult {
	result := &models.AuditResult{Module: "copy"}

	// headline_check: some headline-shaped line has at most 12 words.
	headlineOK := false
	for _, line := range headlinePattern.FindAllString(text, -1) {
		if len(strings.Fields(line)) <= 12 {
			headlineOK = true
			break
		}
	}
	result.Checks = append(result.Checks, check("headline_check", headlineOK))

	// is_readable: FK grade <= 8. A compute failure defaults to "not
	// readable", never to a pass.
	if grade, err := FleschKincaidGrade(text); err == nil {
		result.Checks = append(result.Checks, graded("is_readable", grade <= maxReadableGrade, grade))
	} else {
		result.Checks = append(result.Checks, check("is_readable", false))
	}

	lower := strings.ToLower(text)

	ctaPresent := false
	for _, verb := range ctaVerbs {
		if strings.Contains(lower, verb) {
			ctaPresent = true
			break
		}
	}
	result.Checks = append(result.Checks, check("cta_present", ctaPresent))

	// jargon_ok: jargon occurrences as a percentage of total word count
	// stay under 2%. Vacuously true for empty text.
	totalWords := len(strings.Fields(text))
	jargonOK := true
	if totalWords > 0 {
		jargonCount := 0
		for _, jargon := range jargonWords {
			jargonCount += strings.Count(lower, jargon)
		}
		jargonOK = float64(jargonCount)/float64(totalWords)*100 < 2
	}
	result.Checks = append(result.Checks, check("jargon_ok", jargonOK))

	testimonial := strings.Contains(lower, "testimonial") || strings.Contains(lower, "review")
	result.Checks = append(result.Checks, check("testimonial_present", testimonial))

	return result
}
