// Package report turns audit-module outputs and the technical score into
// the categorized, scored report surfaced to the caller.
package report

import (
	"strings"

	"github.com/pagelens/pagelens/models"
)

// Category names follow the report view: the copy module grades persuasion,
// the mobile module grades accessibility.
const (
	CategoryTechnical     = "technical"
	CategoryAccessibility = "accessibility"
	CategoryConversion    = "conversion"
	CategoryPersuasion    = "persuasion"
	CategoryVisual        = "visual"
)

// technicalIssues is the fixed, hand-authored issue list for the technical
// category. The performance audit is delegated entirely to the external
// tool; only its score is trusted, not a structured breakdown.
var technicalIssues = []models.Issue{
	{
		Title:       "Eliminate render-blocking resources",
		Description: "Resources block first paint of the page. Consider delivering critical JS/CSS inline and deferring the rest.",
	},
}

// Score applies the category score formula: 100 - 5 x failedCount.
// Intentionally unclamped — more than 20 failures drives it negative.
func Score(failedCount int) int {
	return 100 - 5*failedCount
}

// Title turns a check key into its human-readable issue title
// ("cta_present" -> "Cta Present").
func Title(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Categorize converts one module's result into a scored category: failed
// checks become issues, not-evaluated checks are listed separately and do
// not count against the score.
func Categorize(name string, r *models.AuditResult) models.Category {
	issues := []models.Issue{}
	for _, c := range r.Failed() {
		issues = append(issues, models.Issue{Title: Title(c.Key), Description: "Fail"})
	}
	return models.Category{
		Name:         name,
		Score:        Score(len(issues)),
		Issues:       issues,
		NotEvaluated: r.NotEvaluated(),
	}
}

// Build aggregates the available audit results and the technical score into
// a report. Modules absent from the set (raw-text analysis) contribute no
// category rather than a defaulted one.
func Build(url string, set *models.AuditSet, technicalScore int) *models.Report {
	rep := &models.Report{
		URL:            url,
		TechnicalScore: technicalScore,
	}

	rep.Categories = append(rep.Categories, models.Category{
		Name:   CategoryTechnical,
		Score:  technicalScore,
		Issues: technicalIssues,
	})

	if set != nil {
		if set.Mobile != nil {
			rep.Categories = append(rep.Categories, Categorize(CategoryAccessibility, set.Mobile))
		}
		if set.Conversion != nil {
			rep.Categories = append(rep.Categories, Categorize(CategoryConversion, set.Conversion))
		}
		if set.Copy != nil {
			rep.Categories = append(rep.Categories, Categorize(CategoryPersuasion, set.Copy))
		}
		if set.Visual != nil {
			rep.Categories = append(rep.Categories, Categorize(CategoryVisual, set.Visual))
		}
	}

	return rep
}
