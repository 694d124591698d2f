package audit

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pagelens/pagelens/models"
)

var viewportSel = cascadia.MustCompile(`meta[name="viewport"]`)

// RunMobile evaluates mobile usability signals. Only the viewport check has
// real logic today; the remaining heuristics need rendered-layout data a
// static DOM cannot provide and are reported as not evaluated.
func RunMobile(doc *goquery.Document) *models.AuditResult {
	return &models.AuditResult{
		Module: "mobile",
		Checks: []models.CheckResult{
			check("viewport_tag", doc.FindMatcher(viewportSel).Length() > 0),
			notEvaluated("tap_target_ok"),
			notEvaluated("no_horizontal_scroll"),
			notEvaluated("telephone_field_numeric"),
			notEvaluated("cta_thumb_zone"),
		},
	}
}
