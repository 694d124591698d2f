package models

import (
	"reflect"
	"testing"
)

func TestAuditResultFailed(t *testing.T) {
	r := &AuditResult{
		Module: "mobile",
		Checks: []CheckResult{
			{Key: "viewport_tag", Status: CheckPass},
			{Key: "tap_target_ok", Status: CheckNotEvaluated},
			{Key: "no_horizontal_scroll", Status: CheckFail},
		},
	}

	failed := r.Failed()
	if len(failed) != 1 || failed[0].Key != "no_horizontal_scroll" {
		t.Errorf("Failed() = %v, want only the failing check", failed)
	}
}

func TestAuditResultNotEvaluated(t *testing.T) {
	r := &AuditResult{
		Checks: []CheckResult{
			{Key: "a", Status: CheckNotEvaluated},
			{Key: "b", Status: CheckFail},
			{Key: "c", Status: CheckNotEvaluated},
		},
	}

	got := r.NotEvaluated()
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("NotEvaluated() = %v, want [a c]", got)
	}
}

func TestAuditErrorError(t *testing.T) {
	e := NewAuditError(ErrCodeTimeout, "body wait exceeded", nil)
	if e.Error() != "ANALYSIS_TIMEOUT: body wait exceeded" {
		t.Errorf("Error() = %q", e.Error())
	}

	detail := e.ToDetail()
	if detail.Code != ErrCodeTimeout || detail.Message != "body wait exceeded" {
		t.Errorf("ToDetail() = %+v", detail)
	}
}
