// Package audit holds the heuristic rule modules. Each module is a pure
// function over the structural document and/or extracted text, returning a
// named result whose declared checks always appear, in order, for every
// input. Heuristics with no real evaluation logic yet are reported as
// not-evaluated rather than hard-coded passes.
package audit

import "github.com/pagelens/pagelens/models"

func check(key string, pass bool) models.CheckResult {
	status := models.CheckFail
	if pass {
		status = models.CheckPass
	}
	return models.CheckResult{Key: key, Status: status}
}

func graded(key string, pass bool, grade float64) models.CheckResult {
	c := check(key, pass)
	c.Grade = &grade
	return c
}

func notEvaluated(key string) models.CheckResult {
	return models.CheckResult{Key: key, Status: models.CheckNotEvaluated}
}
