package audit

import (
	"testing"

	"github.com/pagelens/pagelens/models"
)

func TestRunMobile_ViewportPresent(t *testing.T) {
	doc := docFromHTML(t, `<html><head><meta name="viewport" content="width=device-width"/></head><body></body></html>`)
	got := findCheck(t, RunMobile(doc), "viewport_tag")
	if got.Status != models.CheckPass {
		t.Errorf("viewport_tag = %v, want pass", got.Status)
	}
}

func TestRunMobile_ViewportMissing(t *testing.T) {
	doc := docFromHTML(t, `<html><head><meta name="description" content="x"/></head><body></body></html>`)
	got := findCheck(t, RunMobile(doc), "viewport_tag")
	if got.Status != models.CheckFail {
		t.Errorf("viewport_tag = %v, want fail", got.Status)
	}
}

func TestRunMobile_UnimplementedChecksNotEvaluated(t *testing.T) {
	result := RunMobile(docFromHTML(t, "<html><body></body></html>"))

	for _, key := range []string{"tap_target_ok", "no_horizontal_scroll", "telephone_field_numeric", "cta_thumb_zone"} {
		got := findCheck(t, result, key)
		if got.Status != models.CheckNotEvaluated {
			t.Errorf("%s = %v, want not_evaluated", key, got.Status)
		}
	}

	if len(result.Checks) != 5 {
		t.Errorf("got %d checks, want 5", len(result.Checks))
	}
}
