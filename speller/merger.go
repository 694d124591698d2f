// Package speller reconciles two independent, imperfect spelling-correction
// sources: a dictionary/rule oracle (LanguageTool) and a language-model
// oracle. Their outputs are exposed side by side, never unioned — each
// engine has different false-positive characteristics and the report shows
// both for human judgment.
package speller

import (
	"context"
	"log/slog"

	"github.com/pagelens/pagelens/models"
	"golang.org/x/sync/errgroup"
)

// Corrector is one correction source consuming a corpus.
type Corrector interface {
	Correct(ctx context.Context, corpus models.Corpus) ([]models.CorrectionEntry, error)
}

// Merger runs the correctors selected by the request mode.
type Merger struct {
	dictionary Corrector
	model      Corrector
}

// NewMerger creates a Merger over the two correction sources.
func NewMerger(dictionary, model Corrector) *Merger {
	return &Merger{dictionary: dictionary, model: model}
}

// Run invokes the corrector(s) selected by mode, concurrently when both are
// requested, and each exactly once. An oracle failure degrades that source
// to an empty list and is logged; it never aborts the report.
func (m *Merger) Run(ctx context.Context, corpus models.Corpus, mode string) *models.CorrectionSet {
	set := &models.CorrectionSet{
		Dictionary: []models.CorrectionEntry{},
		Model:      []models.CorrectionEntry{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if mode == models.ModeDictionary || mode == models.ModeCombined {
		g.Go(func() error {
			entries, err := m.dictionary.Correct(gctx, corpus)
			if err != nil {
				slog.Warn("dictionary corrector failed, degrading to no corrections", "error", err)
				return nil
			}
			set.Dictionary = entries
			return nil
		})
	}

	if mode == models.ModeModel || mode == models.ModeCombined {
		g.Go(func() error {
			entries, err := m.model.Correct(gctx, corpus)
			if err != nil {
				slog.Warn("model corrector failed, degrading to no corrections", "error", err)
				return nil
			}
			set.Model = entries
			return nil
		})
	}

	// Correctors swallow their own errors; Wait only synchronizes.
	_ = g.Wait()

	return set
}
