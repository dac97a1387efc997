// Package analysis submits extracted policy text to OpenAI for a
// compliance audit against a client-named standard.
//
// The remote call is the dominant latency of every request, so it is
// bounded by a timeout, and any failure — network, auth, quota, timeout —
// degrades to a placeholder report instead of failing the request. The
// service favors always returning *a* report over returning an error.
package analysis

import (
	"context"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Outcome is the result of an analysis attempt. Text is always usable for
// rendering; when Degraded is set it carries the failure placeholder and
// Reason holds the underlying cause for logging.
type Outcome struct {
	Text     string
	Degraded bool
	Reason   string
}

// Analyzer produces an audit of policy text against a named standard.
// Implementations must not return errors — degraded outcomes carry the
// failure instead, so the orchestrator always has text to render.
type Analyzer interface {
	Analyze(ctx context.Context, text, standard string) Outcome
}

// Client calls the OpenAI chat completions API.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// New creates an analysis client. An empty apiKey is allowed — every call
// will then degrade, which keeps local development working without a
// credential (release mode requires one at startup).
func New(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		api:     openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Analyze audits the given policy text against the named standard.
//
// The standard string is interpolated into the prompt verbatim — it names
// the framework the model should audit against and is free text by design.
func (c *Client) Analyze(ctx context.Context, text, standard string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(text, standard)},
		},
	})
	if err != nil {
		log.Printf("⚠️  Analysis degraded (standard=%q): %v", standard, err)
		return Outcome{
			Text:     "AI Analysis Failed: " + err.Error(),
			Degraded: true,
			Reason:   err.Error(),
		}
	}

	if len(resp.Choices) == 0 {
		log.Printf("⚠️  Analysis degraded (standard=%q): empty response from model", standard)
		return Outcome{
			Text:     "AI Analysis Failed: no response from model",
			Degraded: true,
			Reason:   "no response from model",
		}
	}

	return Outcome{Text: resp.Choices[0].Message.Content}
}
