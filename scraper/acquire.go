package scraper

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/pagelens/pagelens/models"
)

// Acquisition is the result of acquiring one URL: the visible text of the
// primary page (plus at most one supplementary same-site page), the primary
// page's structural document with non-content markup already stripped, and
// page metadata for the report.
type Acquisition struct {
	// Text is the newline-separated visible text, primary page first.
	Text string

	// Doc is the parsed primary page with script/style/noscript removed.
	// It is read-only for downstream audit modules.
	Doc *goquery.Document

	// Meta holds readability-extracted page metadata.
	Meta models.PageMeta
}

// Acquire renders pageURL in a headless browser session and extracts its
// visible text and structural document.
//
// Lifecycle:
//
//  1. Borrow a page from the pool (returned on every exit path).
//  2. Stealth injection before navigation.
//  3. Navigate; bounded wait for <body>; scroll to the bottom and pause so
//     lazy-loaded content renders.
//  4. Parse the rendered markup, strip script/style/noscript, extract text.
//  5. Sample at most one same-site link and repeat step 3-4 on it with a
//     shorter timeout. Any failure there is silently dropped: the primary
//     page's text alone still yields a report.
//
// A primary-page failure is fatal for the request and surfaced as a typed
// error; there are no retries.
func (s *Scraper) Acquire(ctx context.Context, pageURL string) (*Acquisition, error) {
	s.activePages.Add(1)
	defer s.activePages.Add(-1)

	page, acquireErr := s.pagePool.Get(func() (*rod.Page, error) {
		return s.browser.Page(proto.TargetCreateTarget{})
	})
	if acquireErr != nil {
		return nil, models.NewAuditError(
			models.ErrCodeBrowserCrash,
			"failed to acquire page from pool",
			acquireErr,
		)
	}

	// The about:blank navigation uses the original page reference (no
	// request context), so cleanup succeeds even after a timeout.
	defer func() {
		if navErr := page.Navigate("about:blank"); navErr != nil {
			slog.Warn("cleanup: failed to navigate to about:blank", "error", navErr)
		}
		s.pagePool.Put(page)
	}()

	if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
		slog.Warn("stealth injection failed, proceeding without stealth", "error", evalErr)
	}

	p := page.Context(ctx)

	// ── Primary page ────────────────────────────────────────────────
	rawHTML, finalURL, err := s.render(p, pageURL, s.acquirerCfg.PrimaryTimeout)
	if err != nil {
		return nil, categorizeError(err, "failed to load primary page")
	}

	doc, text, err := parseVisible(rawHTML)
	if err != nil {
		return nil, models.NewAuditError(models.ErrCodeInternal, "failed to parse rendered markup", err)
	}

	meta := extractMeta(rawHTML, finalURL)

	// ── Supplementary page (best-effort) ────────────────────────────
	links := SampleLinks(doc, finalURL)
	for link := range links {
		if strings.EqualFold(link, finalURL) {
			continue
		}
		sampleHTML, _, sampleErr := s.render(p, link, s.acquirerCfg.SampleTimeout)
		if sampleErr != nil {
			slog.Debug("supplementary page dropped", "url", link, "error", sampleErr)
			break
		}
		_, sampleText, parseErr := parseVisible(sampleHTML)
		if parseErr != nil {
			slog.Debug("supplementary page dropped", "url", link, "error", parseErr)
			break
		}
		text = text + "\n" + sampleText
		meta.SampledURL = link
		break
	}

	return &Acquisition{Text: text, Doc: doc, Meta: meta}, nil
}

// render navigates to url, waits up to bodyTimeout for the document body to
// be present, then forces lazy-loaded content by scrolling to the bottom and
// pausing before reading the rendered markup.
func (s *Scraper) render(p *rod.Page, url string, bodyTimeout time.Duration) (html string, finalURL string, err error) {
	if err = p.Navigate(url); err != nil {
		return "", "", err
	}

	if _, err = p.Timeout(bodyTimeout).Element("body"); err != nil {
		return "", "", err
	}

	if _, evalErr := p.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); evalErr != nil {
		slog.Debug("scroll to bottom failed", "url", url, "error", evalErr)
	}
	time.Sleep(s.acquirerCfg.SettleDelay)

	html, err = p.HTML()
	if err != nil {
		return "", "", err
	}

	finalURL = evalStringOrEmpty(p, `() => window.location.href`)
	if finalURL == "" {
		finalURL = url
	}
	return html, finalURL, nil
}

// parseVisible parses rendered markup into a structural document, removes
// non-content elements, and extracts the visible text.
func parseVisible(rawHTML string) (*goquery.Document, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, "", err
	}
	doc.Find("script, style, noscript").Remove()
	return doc, visibleText(doc), nil
}

// evalStringOrEmpty evaluates a JS expression and returns the string result,
// swallowing any errors (useful for optional metadata extraction).
func evalStringOrEmpty(page *rod.Page, js string) string {
	res, err := page.Eval(js)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// categorizeError wraps raw errors into typed AuditErrors so the API layer
// can map them to appropriate HTTP status codes.
func categorizeError(err error, msg string) *models.AuditError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewAuditError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewAuditError(models.ErrCodeTimeout, "request canceled", err)
	default:
		return models.NewAuditError(models.ErrCodeNavigation, msg, err)
	}
}
