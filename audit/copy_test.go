package audit

import (
	"strings"
	"testing"

	"github.com/pagelens/pagelens/models"
)

func findCheck(t *testing.T, result *models.AuditResult, key string) models.CheckResult {
	t.Helper()
	for _, c := range result.Checks {
		if c.Key == key {
			return c
		}
	}
	t.Fatalf("check %q missing from %s result", key, result.Module)
	return models.CheckResult{}
}

func TestRunCopy_CheckOrderIsStable(t *testing.T) {
	result := RunCopy("Get the best deal today. Our reviews say it all.")
	want := []string{"headline_check", "is_readable", "cta_present", "jargon_ok", "testimonial_present"}
	if len(result.Checks) != len(want) {
		t.Fatalf("got %d checks, want %d", len(result.Checks), len(want))
	}
	for i, key := range want {
		if result.Checks[i].Key != key {
			t.Errorf("check[%d] = %q, want %q", i, result.Checks[i].Key, key)
		}
	}
}

func TestRunCopy_HeadlineCheck(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.CheckStatus
	}{
		{"short capitalized line", "Fresh Coffee Delivered Daily", models.CheckPass},
		{"lowercase line only", "fresh coffee delivered daily", models.CheckFail},
		{"too many words", "This Line Has Far Too Many Words To Ever Count As A Usable Headline Anywhere", models.CheckFail},
		{"one good line among long ones", "this line does not count\nBig Savings Today\nneither does this", models.CheckPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findCheck(t, RunCopy(tt.text), "headline_check")
			if got.Status != tt.want {
				t.Errorf("headline_check = %v, want %v", got.Status, tt.want)
			}
		})
	}
}

func TestRunCopy_CTAPresent(t *testing.T) {
	got := findCheck(t, RunCopy("Start your journey with us"), "cta_present")
	if got.Status != models.CheckPass {
		t.Errorf("cta_present = %v, want pass for 'start'", got.Status)
	}

	got = findCheck(t, RunCopy("We sell shoes and hats"), "cta_present")
	if got.Status != models.CheckFail {
		t.Errorf("cta_present = %v, want fail without a verb", got.Status)
	}
}

func TestRunCopy_JargonThreshold(t *testing.T) {
	// 3 jargon words in 25 total is 12%, well past the 2% ceiling.
	filler := strings.Fields(strings.Repeat("word ", 22))
	dense := "leverage synergy stakeholder " + strings.Join(filler, " ")
	if n := len(strings.Fields(dense)); n != 25 {
		t.Fatalf("test text has %d words, want 25", n)
	}
	got := findCheck(t, RunCopy(dense), "jargon_ok")
	if got.Status != models.CheckFail {
		t.Errorf("jargon_ok = %v, want fail at 12%% density", got.Status)
	}

	// 1 jargon word in 100 is 1%, under the ceiling.
	sparse := "leverage " + strings.TrimSpace(strings.Repeat("word ", 99))
	got = findCheck(t, RunCopy(sparse), "jargon_ok")
	if got.Status != models.CheckPass {
		t.Errorf("jargon_ok = %v, want pass at 1%% density", got.Status)
	}
}

func TestRunCopy_JargonVacuousPass(t *testing.T) {
	got := findCheck(t, RunCopy(""), "jargon_ok")
	if got.Status != models.CheckPass {
		t.Errorf("jargon_ok = %v, want vacuous pass on empty text", got.Status)
	}
}

func TestRunCopy_TestimonialPresent(t *testing.T) {
	got := findCheck(t, RunCopy("Read our customer reviews"), "testimonial_present")
	if got.Status != models.CheckPass {
		t.Errorf("testimonial_present = %v, want pass for 'reviews'", got.Status)
	}

	got = findCheck(t, RunCopy("Nothing social here"), "testimonial_present")
	if got.Status != models.CheckFail {
		t.Errorf("testimonial_present = %v, want fail", got.Status)
	}
}

func TestRunCopy_ReadableGradeAttached(t *testing.T) {
	result := RunCopy("The cat sat on the mat. The dog ran to the park.")
	got := findCheck(t, result, "is_readable")
	if got.Status != models.CheckPass {
		t.Errorf("is_readable = %v, want pass for simple sentences", got.Status)
	}
	if got.Grade == nil {
		t.Fatal("is_readable should carry the computed grade")
	}
	if *got.Grade > 8.0 {
		t.Errorf("grade = %f, want <= 8", *got.Grade)
	}
}

func TestRunCopy_UnreadableText(t *testing.T) {
	dense := "Organizational effectiveness necessitates comprehensive interdepartmental communication methodologies prioritizing administrative accountability"
	got := findCheck(t, RunCopy(dense), "is_readable")
	if got.Status != models.CheckFail {
		t.Errorf("is_readable = %v, want fail for polysyllabic wall", got.Status)
	}
}

func TestRunCopy_EmptyTextNotReadable(t *testing.T) {
	got := findCheck(t, RunCopy(""), "is_readable")
	if got.Status != models.CheckFail {
		t.Errorf("is_readable = %v, want fail when grade is uncomputable", got.Status)
	}
	if got.Grade != nil {
		t.Errorf("grade should be absent when uncomputable, got %f", *got.Grade)
	}
}
