package models

// CheckStatus is the outcome of a single audit check.
type CheckStatus string

const (
	// CheckPass means the check was evaluated and the page satisfies it.
	CheckPass CheckStatus = "pass"

	// CheckFail means the check was evaluated and the page violates it.
	CheckFail CheckStatus = "fail"

	// CheckNotEvaluated marks heuristics that have no real evaluation
	// logic yet. They are reported explicitly instead of defaulting to a
	// pass, so generated reports never claim confidence they don't have.
	CheckNotEvaluated CheckStatus = "not_evaluated"
)

// CheckResult is one named check outcome inside an AuditResult.
type CheckResult struct {
	Key    string      `json:"key"`
	Status CheckStatus `json:"status"`

	// Grade carries the numeric value for graded checks (currently only
	// the Flesch-Kincaid grade behind is_readable). Nil for boolean checks.
	Grade *float64 `json:"grade,omitempty"`
}

// AuditResult is the output of one audit module. Checks appear in the
// module's declared order and every declared key is present for every
// input, with a stable default when unevaluable.
type AuditResult struct {
	Module string        `json:"module"`
	Checks []CheckResult `json:"checks"`
}

// Failed returns the checks that were evaluated and did not pass.
func (r *AuditResult) Failed() []CheckResult {
	var failed []CheckResult
	for _, c := range r.Checks {
		if c.Status == CheckFail {
			failed = append(failed, c)
		}
	}
	return failed
}

// NotEvaluated returns the keys of checks that were skipped as unimplemented.
func (r *AuditResult) NotEvaluated() []string {
	var keys []string
	for _, c := range r.Checks {
		if c.Status == CheckNotEvaluated {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// AuditSet groups the per-module results produced for one analysis. Mobile,
// Conversion and Visual are nil for raw-text input, where no structural
// document exists; they are skipped entirely, not defaulted.
type AuditSet struct {
	Copy       *AuditResult `json:"copy,omitempty"`
	Mobile     *AuditResult `json:"mobile,omitempty"`
	Conversion *AuditResult `json:"conversion,omitempty"`
	Visual     *AuditResult `json:"visual,omitempty"`
}

// Issue is one failed (or hand-authored) finding in a report category.
type Issue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Category is one scored dimension of the final report.
type Category struct {
	Name string `json:"name"`

	// Score is 100 - 5 x failedCheckCount. Intentionally unclamped: a
	// category with more than 20 failures goes negative.
	Score int `json:"score"`

	Issues []Issue `json:"issues"`

	// NotEvaluated lists checks excluded from scoring because their
	// heuristics are unimplemented.
	NotEvaluated []string `json:"not_evaluated,omitempty"`
}

// Report is the aggregated multi-dimensional audit report for a URL.
type Report struct {
	URL string `json:"url"`

	// TechnicalScore is the 0-100 performance score extracted from the
	// external audit tool, 0 when the run failed.
	TechnicalScore int `json:"technical_score"`

	Categories []Category `json:"categories"`
}
