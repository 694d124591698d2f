// Package analyzer orchestrates the analysis pipeline: acquisition,
// tokenization, the word-count gate, the correction engines, the audit rule
// modules and report aggregation.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/pagelens/pagelens/audit"
	"github.com/pagelens/pagelens/config"
	"github.com/pagelens/pagelens/corpus"
	"github.com/pagelens/pagelens/history"
	"github.com/pagelens/pagelens/lighthouse"
	"github.com/pagelens/pagelens/models"
	"github.com/pagelens/pagelens/report"
	"github.com/pagelens/pagelens/scraper"
	"github.com/pagelens/pagelens/speller"
	"golang.org/x/sync/errgroup"
)

// tooShortFormat is the short-circuit message for inputs under the
// word-count gate.
const tooShortFormat = "Page too short or empty to process. Word count: %d"

// Acquirer fetches a rendered page. Implemented by *scraper.Scraper;
// narrowed to an interface so tests can stub acquisition.
type Acquirer interface {
	Acquire(ctx context.Context, url string) (*scraper.Acquisition, error)
}

// Analyzer wires the pipeline stages together. All state is per-request
// except the injected history store.
type Analyzer struct {
	acquirer Acquirer
	merger   *speller.Merger
	auditor  lighthouse.Auditor
	hist     *history.Store
	cfg      config.AcquirerConfig
}

// New creates an Analyzer.
func New(acquirer Acquirer, merger *speller.Merger, auditor lighthouse.Auditor, hist *history.Store, cfg config.AcquirerConfig) *Analyzer {
	return &Analyzer{
		acquirer: acquirer,
		merger:   merger,
		auditor:  auditor,
		hist:     hist,
		cfg:      cfg,
	}
}

// Analyze runs the full pipeline for one request. URL inputs get the whole
// treatment (acquisition, both audit dimensions, technical audit, report);
// raw text gets tokenization, corrections and the copy audit only.
//
// The word-count gate is hard: below cfg.MinWords the result carries only
// the count and a message, and no corrector or audit module is invoked.
func (a *Analyzer) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	a.hist.Append(req.Input)

	if req.IsURL() {
		return a.analyzeURL(ctx, req)
	}
	return a.analyzeText(ctx, req)
}

func (a *Analyzer) analyzeURL(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	totalStart := time.Now()

	acq, err := a.acquirer.Acquire(ctx, req.Input)
	if err != nil {
		return nil, err
	}
	acquisitionMs := time.Since(totalStart).Milliseconds()

	c := corpus.Tokenize(acq.Text)
	if c.WordCount() < a.cfg.MinWords {
		return &models.AnalyzeResponse{
			Success:   true,
			WordCount: c.WordCount(),
			Message:   fmt.Sprintf(tooShortFormat, c.WordCount()),
			Page:      &acq.Meta,
			Timing: models.TimingInfo{
				TotalMs:       time.Since(totalStart).Milliseconds(),
				AcquisitionMs: acquisitionMs,
			},
		}, nil
	}

	// The correction engines and the technical audit are independent
	// blocking operations; run them concurrently. Both degrade internally
	// instead of failing.
	var (
		corrections  *models.CorrectionSet
		techScore    int
		correctionMs int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		corrections = a.merger.Run(gctx, c, req.Mode)
		correctionMs = time.Since(start).Milliseconds()
		return nil
	})
	g.Go(func() error {
		techScore = a.auditor.Score(gctx, req.Input)
		return nil
	})

	audits := &models.AuditSet{
		Copy:       audit.RunCopy(c.Lines()),
		Mobile:     audit.RunMobile(acq.Doc),
		Conversion: audit.RunConversion(acq.Doc, acq.Text),
		Visual:     audit.RunVisual(acq.Doc),
	}

	_ = g.Wait()

	a.hist.SetLastAudits(req.Input, audits)

	return &models.AnalyzeResponse{
		Success:     true,
		WordCount:   c.WordCount(),
		Text:        c.Lines(),
		Corrections: corrections,
		Audits:      audits,
		Page:        &acq.Meta,
		Report:      report.Build(req.Input, audits, techScore),
		Timing: models.TimingInfo{
			TotalMs:       time.Since(totalStart).Milliseconds(),
			AcquisitionMs: acquisitionMs,
			CorrectionMs:  correctionMs,
		},
	}, nil
}

// analyzeText handles raw pasted text: no structural document exists, so
// the mobile, conversion and visual modules are skipped entirely — not run
// with defaulted output — and no report is built.
func (a *Analyzer) analyzeText(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	totalStart := time.Now()

	c := corpus.Tokenize(req.Input)
	if c.WordCount() < a.cfg.MinWords {
		return &models.AnalyzeResponse{
			Success:   true,
			WordCount: c.WordCount(),
			Message:   fmt.Sprintf(tooShortFormat, c.WordCount()),
			Timing: models.TimingInfo{
				TotalMs: time.Since(totalStart).Milliseconds(),
			},
		}, nil
	}

	correctionStart := time.Now()
	corrections := a.merger.Run(ctx, c, req.Mode)
	correctionMs := time.Since(correctionStart).Milliseconds()

	audits := &models.AuditSet{
		Copy: audit.RunCopy(c.Joined()),
	}

	return &models.AnalyzeResponse{
		Success:     true,
		WordCount:   c.WordCount(),
		Text:        c.Lines(),
		Corrections: corrections,
		Audits:      audits,
		Timing: models.TimingInfo{
			TotalMs:      time.Since(totalStart).Milliseconds(),
			CorrectionMs: correctionMs,
		},
	}, nil
}

// Report rebuilds the category report for the most recently analyzed URL,
// re-running the technical audit against it.
func (a *Analyzer) Report(ctx context.Context) (*models.Report, error) {
	url, ok := a.hist.LatestURL()
	if !ok {
		return nil, models.NewAuditError(models.ErrCodeInvalidInput,
			"no analyzed URL in session history", nil)
	}

	techScore := a.auditor.Score(ctx, url)
	_, audits := a.hist.LastAudits()

	return report.Build(url, audits, techScore), nil
}
