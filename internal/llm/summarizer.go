package llm

import (
	"context"
	"errors"
	"strings"
	"time"
)

const summarizerSystemPrompt = `You are an internship journal summarization assistant. Extract the concrete implementation actions from the journal entry the user provides.

Rules:
- Exclude reflections, outcomes, goals, self-expectations and other subjective content
- Keep only concrete operations, tools used and problems solved
- Output a bullet list, each item starting with "- " and ending with a period
- Condense to 1-3 items, each strictly under 30 words`

// DefaultSummarizeTimeout bounds a single summarization call.
// An expired call is reported as an error, same as any other failure.
const DefaultSummarizeTimeout = 30 * time.Second

// ErrEmptyContent is returned when there is nothing to summarize.
var ErrEmptyContent = errors.New("content cannot be empty")

// Summarizer produces natural-language summaries of journal content.
type Summarizer struct {
	client  Client
	timeout time.Duration
}

// NewSummarizer creates a Summarizer with the given LLM client.
func NewSummarizer(client Client) *Summarizer {
	return &Summarizer{client: client, timeout: DefaultSummarizeTimeout}
}

// NewSummarizerWithTimeout creates a Summarizer with a custom per-call timeout.
func NewSummarizerWithTimeout(client Client, timeout time.Duration) *Summarizer {
	if timeout <= 0 {
		timeout = DefaultSummarizeTimeout
	}
	return &Summarizer{client: client, timeout: timeout}
}

// Summarize sends the content to the LLM and returns the summary text.
func (s *Summarizer) Summarize(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Chat(ctx, []Message{
		{Role: "system", Content: summarizerSystemPrompt},
		{Role: "user", Content: content},
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp), nil
}
