package models

// AnalyzeResponse is the response for POST /api/v1/analyze.
type AnalyzeResponse struct {
	// Success indicates whether the analysis completed without errors.
	// A "too short" result is still a success; Message explains it.
	Success bool `json:"success"`

	// WordCount is the filtered word count of the analyzed corpus.
	WordCount int `json:"word_count"`

	// Message is set for short-circuit results ("too short to process").
	Message string `json:"message,omitempty"`

	// Text is the filtered word sample, one word per line.
	Text string `json:"text,omitempty"`

	// Corrections holds the two correctors' outputs. Nil when the input
	// was too short to analyze.
	Corrections *CorrectionSet `json:"corrections,omitempty"`

	// Audits holds the per-module heuristic results. Mobile, Conversion
	// and Visual are only present for URL input.
	Audits *AuditSet `json:"audits,omitempty"`

	// Page carries metadata about the fetched page. Nil for text input.
	Page *PageMeta `json:"page,omitempty"`

	// Report is the aggregated category report. Only built for URL input.
	Report *Report `json:"report,omitempty"`

	// Timing provides duration breakdowns for the operation.
	Timing TimingInfo `json:"timing"`

	// Error is populated only when Success is false.
	Error *ErrorDetail `json:"error,omitempty"`
}

// PageMeta holds page-level information extracted during acquisition.
type PageMeta struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt,omitempty"`
	SiteName string `json:"site_name,omitempty"`

	// FinalURL is the URL after following all redirects.
	FinalURL string `json:"final_url"`

	// ContentPreview is a markdown rendition of the page's main content,
	// truncated for response size.
	ContentPreview string `json:"content_preview,omitempty"`

	// SampledURL is the supplementary same-site page pulled to broaden
	// the text sample. Empty when none was fetched.
	SampledURL string `json:"sampled_url,omitempty"`
}

// TimingInfo breaks down the time spent in each phase.
type TimingInfo struct {
	// TotalMs is the end-to-end duration in milliseconds.
	TotalMs int64 `json:"total_ms"`

	// AcquisitionMs is the time spent rendering and extracting the page.
	AcquisitionMs int64 `json:"acquisition_ms,omitempty"`

	// CorrectionMs is the time spent in the correction engines.
	CorrectionMs int64 `json:"correction_ms,omitempty"`
}

// ReportResponse is the response for GET /api/v1/report.
type ReportResponse struct {
	Success bool         `json:"success"`
	Report  *Report      `json:"report,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status    string    `json:"status"` // "healthy" or "degraded"
	Uptime    string    `json:"uptime"`
	PoolStats PoolStats `json:"pool_stats"`
	Version   string    `json:"version"`
}

// PoolStats reports the state of the browser page pool.
type PoolStats struct {
	MaxPages    int `json:"max_pages"`
	ActivePages int `json:"active_pages"`
}
