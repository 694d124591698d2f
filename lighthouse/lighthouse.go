// Package lighthouse adapts the external performance-audit tool. The tool
// is an opaque subprocess that writes a JSON report to a fixed path; only
// its 0-1 performance score is trusted, scaled to 0-100.
package lighthouse

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/ysmood/gson"
)

// Auditor obtains a technical performance score for a URL. Failure is never
// surfaced: an unobtainable score is 0.
type Auditor interface {
	Score(ctx context.Context, url string) int
}

// Runner invokes the lighthouse binary as a blocking subprocess.
type Runner struct {
	binary       string
	outputPath   string
	pollAttempts int
	pollInterval time.Duration
}

// NewRunner creates a Runner writing its JSON artifact to outputPath,
// overwritten on each run.
func NewRunner(binary, outputPath string, pollAttempts int, pollInterval time.Duration) *Runner {
	return &Runner{
		binary:       binary,
		outputPath:   outputPath,
		pollAttempts: pollAttempts,
		pollInterval: pollInterval,
	}
}

// Score implements Auditor. It runs the audit tool against url, waits for
// the JSON artifact to appear and be non-empty (bounded polling), and
// extracts categories.performance.score. Any process, polling or parse
// failure yields 0 and is logged. No cancellation beyond ctx: a caller that
// aborts must accept the subprocess running to completion.
func (r *Runner) Score(ctx context.Context, url string) int {
	if err := os.MkdirAll(filepath.Dir(r.outputPath), 0o755); err != nil {
		slog.Error("lighthouse: cannot create output directory", "path", r.outputPath, "error", err)
		return 0
	}
	// Remove the previous run's artifact so polling cannot read stale data.
	_ = os.Remove(r.outputPath)

	cmd := exec.CommandContext(ctx, r.binary,
		url,
		"--quiet",
		"--chrome-flags=--headless",
		"--output-path="+r.outputPath,
		"--output=json",
	)
	if err := cmd.Run(); err != nil {
		slog.Error("lighthouse: audit subprocess failed", "url", url, "error", err)
		return 0
	}

	if !r.awaitArtifact(ctx) {
		slog.Error("lighthouse: report artifact never appeared", "path", r.outputPath)
		return 0
	}

	return r.parseScore()
}

// awaitArtifact polls for a non-empty report file.
func (r *Runner) awaitArtifact(ctx context.Context) bool {
	for i := 0; i < r.pollAttempts; i++ {
		if info, err := os.Stat(r.outputPath); err == nil && info.Size() > 0 {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(r.pollInterval):
		}
	}
	info, err := os.Stat(r.outputPath)
	return err == nil && info.Size() > 0
}

// parseScore extracts the 0-1 performance score and scales it to 0-100.
func (r *Runner) parseScore() int {
	data, err := os.ReadFile(r.outputPath)
	if err != nil {
		slog.Error("lighthouse: cannot read report", "path", r.outputPath, "error", err)
		return 0
	}

	score := gson.NewFrom(string(data)).Get("categories.performance.score")
	if score.Nil() {
		slog.Error("lighthouse: performance score not found in report", "path", r.outputPath)
		return 0
	}

	return int(score.Num() * 100)
}
