package speller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pagelens/pagelens/models"
	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt pins the model to the one job it has. The output contract
// (`wrong -> correct` lines, nothing else) is enforced again by the parser;
// free-form model text is never trusted beyond that shape.
const systemPrompt = `You are a strict American English spellchecker.
Your job is to do ONLY the following:
1. Identify spelling mistakes.
2. Identify British English spellings and convert them to American English.
Use ONLY the list of words provided - do not add or imagine extra words.
Output ONLY in the format: wrongword -> correctword
Do NOT list correct words.
Do NOT fix brand names, proper nouns, or names unless they are clearly misspelled.
Do NOT explain anything.`

// ChatClient is the minimal chat-completion surface the model corrector
// needs; any OpenAI-compatible backend can be adapted.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ModelCorrector is the language-model-based corrector.
type ModelCorrector struct {
	client ChatClient
	model  string
}

// NewModelCorrector creates a corrector over an OpenAI-compatible endpoint.
func NewModelCorrector(baseURL, apiKey, model string) *ModelCorrector {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &ModelCorrector{client: openai.NewClientWithConfig(cfg), model: model}
}

// NewModelCorrectorWithClient wires a custom ChatClient, used by tests.
func NewModelCorrectorWithClient(client ChatClient, model string) *ModelCorrector {
	return &ModelCorrector{client: client, model: model}
}

// Correct implements Corrector. It sends the full filtered word list to the
// chat oracle and runs the raw response through the strict line parser.
func (mc *ModelCorrector) Correct(ctx context.Context, corpus models.Corpus) ([]models.CorrectionEntry, error) {
	prompt := fmt.Sprintf("Here is a list of words:\n[%s]\n\nReturn ONLY the misspelled or British English words corrected to American English, in the format:\nwrongword -> correctword",
		strings.Join(corpus.Words, ", "))

	resp, err := mc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       mc.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, models.NewAuditError(models.ErrCodeSpeller, "model corrector request failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, models.NewAuditError(models.ErrCodeSpeller, "model corrector returned no choices", nil)
	}

	entries, rejected := ParseCorrections(resp.Choices[0].Message.Content)
	if len(rejected) > 0 {
		slog.Debug("model corrector lines rejected by parser",
			"rejected", len(rejected), "accepted", len(entries))
	}
	return entries, nil
}
