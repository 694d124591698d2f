package audit

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pagelens/pagelens/models"
)

var (
	heroSel = cascadia.MustCompile("h1, h2, h3")
	h1Sel   = cascadia.MustCompile("h1")
)

// hexColor matches 3- or 6-digit hex color literals in serialized markup.
var hexColor = regexp.MustCompile(`#(?:[0-9a-fA-F]{3}){1,2}`)

// maxPaletteColors is the largest distinct inline color count considered a
// disciplined brand palette.
const maxPaletteColors = 2

// RunVisual evaluates visual-hierarchy heuristics. Contrast and above-fold
// placement need a rendering engine and are reported as not evaluated.
func RunVisual(doc *goquery.Document) *models.AuditResult {
	result := &models.AuditResult{Module: "visual"}

	// hero_headline: some h1-h3 is inline-styled >= 32px and bold.
	hero := false
	doc.FindMatcher(heroSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		style, _ := s.Attr("style")
		if strings.Contains(style, "font-size") && strings.Contains(style, "32px") &&
			(strings.Contains(style, "bold") || strings.Contains(style, "font-weight: 700")) {
			hero = true
			return false
		}
		return true
	})
	result.Checks = append(result.Checks, check("hero_headline", hero))

	result.Checks = append(result.Checks, notEvaluated("cta_contrast"))

	result.Checks = append(result.Checks, check("single_h1", doc.FindMatcher(h1Sel).Length() == 1))

	// limited_palette: distinct hex literals in the serialized document.
	// The document arrives with style elements already stripped, so this
	// effectively counts inline-style colors.
	colors := make(map[string]struct{})
	if markup, err := doc.Html(); err == nil {
		for _, c := range hexColor.FindAllString(markup, -1) {
			colors[strings.ToLower(c)] = struct{}{}
		}
	}
	result.Checks = append(result.Checks, check("limited_palette", len(colors) <= maxPaletteColors))

	result.Checks = append(result.Checks, notEvaluated("cta_above_fold"))

	return result
}
