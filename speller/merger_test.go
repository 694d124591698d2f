package speller

import (
	"context"
	"errors"
	"testing"

	"github.com/pagelens/pagelens/models"
)

// fakeCorrector counts invocations and returns canned entries or an error.
type fakeCorrector struct {
	entries []models.CorrectionEntry
	err     error
	calls   int
}

func (f *fakeCorrector) Correct(_ context.Context, _ models.Corpus) ([]models.CorrectionEntry, error) {
	f.calls++
	return f.entries, f.err
}

func testCorpus() models.Corpus {
	return models.Corpus{Words: []string{"Recieve", "Quality"}}
}

func TestMergerRun_DictionaryMode(t *testing.T) {
	dict := &fakeCorrector{entries: []models.CorrectionEntry{{Wrong: "Recieve", Correct: "Receive"}}}
	model := &fakeCorrector{entries: []models.CorrectionEntry{{Wrong: "Quality", Correct: "Qualify"}}}
	m := NewMerger(dict, model)

	set := m.Run(context.Background(), testCorpus(), models.ModeDictionary)

	if dict.calls != 1 {
		t.Errorf("dictionary called %d times, want 1", dict.calls)
	}
	if model.calls != 0 {
		t.Errorf("model called %d times, want 0", model.calls)
	}
	if len(set.Dictionary) != 1 || len(set.Model) != 0 {
		t.Errorf("set = %+v, want 1 dictionary entry and 0 model entries", set)
	}
}

func TestMergerRun_ModelMode(t *testing.T) {
	dict := &fakeCorrector{}
	model := &fakeCorrector{entries: []models.CorrectionEntry{{Wrong: "Recieve", Correct: "Receive"}}}
	m := NewMerger(dict, model)

	set := m.Run(context.Background(), testCorpus(), models.ModeModel)

	if dict.calls != 0 {
		t.Errorf("dictionary called %d times, want 0", dict.calls)
	}
	if model.calls != 1 {
		t.Errorf("model called %d times, want 1", model.calls)
	}
	if len(set.Model) != 1 {
		t.Errorf("model entries = %v, want 1", set.Model)
	}
}

func TestMergerRun_CombinedMode(t *testing.T) {
	dict := &fakeCorrector{entries: []models.CorrectionEntry{{Wrong: "Recieve", Correct: "Receive"}}}
	model := &fakeCorrector{entries: []models.CorrectionEntry{{Wrong: "Quality", Correct: "Qualify"}}}
	m := NewMerger(dict, model)

	set := m.Run(context.Background(), testCorpus(), models.ModeCombined)

	if dict.calls != 1 || model.calls != 1 {
		t.Errorf("calls = (%d, %d), want each corrector invoked exactly once", dict.calls, model.calls)
	}
	if len(set.Dictionary) != 1 || len(set.Model) != 1 {
		t.Errorf("set = %+v, want one entry on each side", set)
	}
}

func TestMergerRun_OracleFailureDegrades(t *testing.T) {
	dict := &fakeCorrector{err: errors.New("connection refused")}
	model := &fakeCorrector{entries: []models.CorrectionEntry{{Wrong: "Recieve", Correct: "Receive"}}}
	m := NewMerger(dict, model)

	set := m.Run(context.Background(), testCorpus(), models.ModeCombined)

	if set.Dictionary == nil {
		t.Fatal("failed oracle should degrade to an empty list, not nil")
	}
	if len(set.Dictionary) != 0 {
		t.Errorf("dictionary entries = %v, want empty after failure", set.Dictionary)
	}
	if len(set.Model) != 1 {
		t.Errorf("model entries = %v, want 1 (unaffected by dictionary failure)", set.Model)
	}
}

func TestMergerRun_BothFail(t *testing.T) {
	dict := &fakeCorrector{err: errors.New("down")}
	model := &fakeCorrector{err: errors.New("also down")}
	m := NewMerger(dict, model)

	set := m.Run(context.Background(), testCorpus(), models.ModeCombined)

	if set == nil || set.Dictionary == nil || set.Model == nil {
		t.Fatal("both-failed run should still return an empty set")
	}
	if len(set.Dictionary) != 0 || len(set.Model) != 0 {
		t.Errorf("set = %+v, want empty lists", set)
	}
}
