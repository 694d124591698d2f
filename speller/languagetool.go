package speller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pagelens/pagelens/models"
)

// spellingIndicator is the diagnostic-message fragment that marks a
// LanguageTool match as a spelling mistake rather than grammar or style.
const spellingIndicator = "Possible spelling mistake"

// LanguageTool is the dictionary/rule-based corrector. It consults a
// LanguageTool server's check API with a locale and the space-joined corpus,
// and keeps only spelling-mistake diagnostics that carry at least one
// suggested replacement (the first suggestion wins; suggestion-less matches
// are dropped silently).
type LanguageTool struct {
	httpClient *http.Client
	baseURL    string
	language   string
}

// NewLanguageTool creates a LanguageTool corrector. Pass nil to use a
// default client with the given timeout.
func NewLanguageTool(httpClient *http.Client, baseURL, language string, timeout time.Duration) *LanguageTool {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &LanguageTool{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
	}
}

// ltResponse is the minimal LanguageTool check response we need.
type ltResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
	} `json:"matches"`
}

// Correct implements Corrector.
func (lt *LanguageTool) Correct(ctx context.Context, corpus models.Corpus) ([]models.CorrectionEntry, error) {
	text := corpus.Joined()

	form := url.Values{}
	form.Set("language", lt.language)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		lt.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := lt.httpClient.Do(req)
	if err != nil {
		return nil, models.NewAuditError(models.ErrCodeSpeller, "languagetool request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAuditError(models.ErrCodeSpeller, "failed to read languagetool response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, models.NewAuditError(models.ErrCodeSpeller,
			fmt.Sprintf("languagetool returned %d", resp.StatusCode), nil)
	}

	var ltResp ltResponse
	if err := json.Unmarshal(body, &ltResp); err != nil {
		return nil, models.NewAuditError(models.ErrCodeSpeller, "failed to parse languagetool response", err)
	}

	entries := []models.CorrectionEntry{}
	seen := make(map[string]struct{})
	for _, m := range ltResp.Matches {
		if !strings.Contains(m.Message, spellingIndicator) || len(m.Replacements) == 0 {
			continue
		}
		wrong := spanAt(text, m.Offset, m.Length)
		correct := m.Replacements[0].Value
		if wrong == "" || strings.EqualFold(wrong, correct) {
			continue
		}
		// One entry per flagged word; later matches of the same span lose.
		if _, dup := seen[wrong]; dup {
			continue
		}
		seen[wrong] = struct{}{}
		entries = append(entries, models.CorrectionEntry{Wrong: wrong, Correct: correct})
	}

	return entries, nil
}

// spanAt slices text by rune offsets, the unit LanguageTool reports.
func spanAt(text string, offset, length int) string {
	runes := []rune(text)
	if offset < 0 || length <= 0 || offset+length > len(runes) {
		return ""
	}
	return string(runes[offset : offset+length])
}
