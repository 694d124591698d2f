package audit

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pagelens/pagelens/models"
)

// ctaLabel matches anchor text that reads like a call to action.
var ctaLabel = regexp.MustCompile(`(?i)(buy|try|get|start|learn|sign|register)`)

var (
	anchorSel    = cascadia.MustCompile("a")
	formSel      = cascadia.MustCompile("form")
	formFieldSel = cascadia.MustCompile("input, select, textarea")
	imageSel     = cascadia.MustCompile("img")
)

// trustKeywords flag an image as a trust badge when found in its alt text
// or source path.
var trustKeywords = []string{"secure", "verified", "https", "badge", "ssl"}

// urgencyPhrases is the fixed scarcity/urgency phrase list.
var urgencyPhrases = []string{"only", "left", "hurry", "limited", "ends soon", "countdown", "time left"}

// maxFormFields is the largest form a visitor is expected to tolerate.
const maxFormFields = 5

// RunConversion evaluates conversion-oriented UX heuristics over the
// structural document and the page's visible text.
func RunConversion(doc *goquery.Document, text string) *models.AuditResult {
	result := &models.AuditResult{Module: "conversion"}

	ctaLinks := doc.FindMatcher(anchorSel).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return ctaLabel.MatchString(s.Text())
	})

	// cta_unique: all CTA-labeled links share at most one distinct inline
	// style string, so the page has one consistent button treatment.
	styles := make(map[string]struct{})
	ctaLinks.Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		styles[style] = struct{}{}
	})
	result.Checks = append(result.Checks, check("cta_unique", len(styles) <= 1))

	// cta_size_ok: at least one CTA is 16px and bold.
	sizeOK := false
	ctaLinks.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		style, _ := s.Attr("style")
		if strings.Contains(style, "font-size: 16px") &&
			(strings.Contains(style, "bold") || strings.Contains(style, "font-weight: 700")) {
			sizeOK = true
			return false
		}
		return true
	})
	result.Checks = append(result.Checks, check("cta_size_ok", sizeOK))

	// form_field_ok: no form asks for more than maxFormFields inputs.
	formOK := true
	doc.FindMatcher(formSel).EachWithBreak(func(_ int, form *goquery.Selection) bool {
		if form.FindMatcher(formFieldSel).Length() > maxFormFields {
			formOK = false
			return false
		}
		return true
	})
	result.Checks = append(result.Checks, check("form_field_ok", formOK))

	// trust_badges: some image advertises security or verification.
	badges := false
	doc.FindMatcher(imageSel).EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt, _ := img.Attr("alt")
		src, _ := img.Attr("src")
		haystack := strings.ToLower(alt + src)
		for _, k := range trustKeywords {
			if strings.Contains(haystack, k) {
				badges = true
				return false
			}
		}
		return true
	})
	result.Checks = append(result.Checks, check("trust_badges", badges))

	lower := strings.ToLower(text)
	urgency := false
	for _, phrase := range urgencyPhrases {
		if strings.Contains(lower, phrase) {
			urgency = true
			break
		}
	}
	result.Checks = append(result.Checks, check("urgency_present", urgency))

	return result
}
