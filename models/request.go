package models

import "strings"

// Correction modes selectable per request.
const (
	ModeDictionary = "dictionary"
	ModeModel      = "model"
	ModeCombined   = "combined"
)

// AnalyzeRequest is the payload for POST /api/v1/analyze.
type AnalyzeRequest struct {
	// Input is either a URL (http/https) or raw pasted text. Required.
	Input string `json:"input" binding:"required"`

	// Mode selects which correction engines run.
	// Allowed: "dictionary", "model", "combined" (default).
	Mode string `json:"mode,omitempty" binding:"omitempty,oneof=dictionary model combined"`
}

// Defaults applies default values to unset fields.
func (r *AnalyzeRequest) Defaults() {
	r.Input = strings.TrimSpace(r.Input)
	if r.Mode == "" {
		r.Mode = ModeCombined
	}
}

// IsURL reports whether the input should be treated as a page to fetch
// rather than pasted text.
func (r *AnalyzeRequest) IsURL() bool {
	return strings.HasPrefix(r.Input, "http://") || strings.HasPrefix(r.Input, "https://")
}
