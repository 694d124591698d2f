package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nonTextExtensions are href path suffixes that never lead to readable
// content: images, stylesheets, scripts, archives, media, documents.
var nonTextExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".svg", ".ico",
	".css", ".js", ".pdf", ".zip", ".mp4", ".mp3",
}

// SampleLinks discovers candidate content links in a structural document.
// Relative hrefs are resolved against baseURL; only http/https results are
// kept, and anchors whose path ends in a non-text extension are excluded.
// The extension check runs against the URL path, so a query string cannot
// defeat it.
//
// The result is a set: callers must not depend on iteration order.
func SampleLinks(doc *goquery.Document, baseURL string) map[string]struct{} {
	links := make(map[string]struct{})

	base, err := url.Parse(baseURL)
	if err != nil {
		return links
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		if hasNonTextExtension(resolved.Path) {
			return
		}

		links[resolved.String()] = struct{}{}
	})

	return links
}

func hasNonTextExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range nonTextExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
