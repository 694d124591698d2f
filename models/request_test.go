package models

import "testing"

func TestAnalyzeRequestDefaults(t *testing.T) {
	r := AnalyzeRequest{Input: "  https://example.com  "}
	r.Defaults()

	if r.Input != "https://example.com" {
		t.Errorf("input = %q, want trimmed", r.Input)
	}
	if r.Mode != ModeCombined {
		t.Errorf("mode = %q, want %q", r.Mode, ModeCombined)
	}
}

func TestAnalyzeRequestDefaults_ModePreserved(t *testing.T) {
	r := AnalyzeRequest{Input: "text", Mode: ModeDictionary}
	r.Defaults()
	if r.Mode != ModeDictionary {
		t.Errorf("mode = %q, want unchanged", r.Mode)
	}
}

func TestAnalyzeRequestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"http://example.com", true},
		{"example.com", false},
		{"ftp://example.com", false},
		{"visit https://example.com today", false},
		{"", false},
	}

	for _, tt := range tests {
		r := AnalyzeRequest{Input: tt.input}
		if got := r.IsURL(); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
