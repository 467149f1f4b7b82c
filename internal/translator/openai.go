// Package translator calls an OpenAI-compatible chat completions API to
// translate article text.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"dqx_news/internal/config"
	"dqx_news/internal/domain"
)

const systemPrompt = `You are a professional translator specializing in Japanese video game content,
particularly Dragon Quest X (DQX) online game. Translate the Japanese text you are given to natural %s.

Guidelines:
- Keep game-specific terms, item names, location names, and character names that players would recognize
- Preserve any formatting like bullet points, numbered lists, dates, and times
- Convert Japanese date/time formats to be internationally readable while keeping original values
- Keep URLs and technical identifiers unchanged
- Maintain the original tone (official announcements should sound official)
- If the text is already in the target language, return it unchanged`

// Client translates text through an OpenAI-compatible chat completions API.
type Client struct {
	baseURL     string
	model       string
	apiKey      string
	temperature float64
	httpClient  *http.Client
	logger      *slog.Logger
}

// Result is a translated title and content pair.
type Result struct {
	Title   string
	Content string
}

func New(cfg config.TranslatorConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "translator"),
	}
}

// Translate translates a title and body to the target language. Glossary
// hints force specific term translations. Empty title or content is passed
// through as empty without calling the backend.
func (c *Client) Translate(ctx context.Context, title, content, lang string, hints []domain.GlossaryEntry) (*Result, error) {
	prompt := fmt.Sprintf(systemPrompt, lang)
	if len(hints) > 0 {
		var sb strings.Builder
		sb.WriteString("\n\nUse these exact translations for the following terms:\n")
		for _, h := range hints {
			sb.WriteString("- ")
			sb.WriteString(h.SourceText)
			sb.WriteString(" => ")
			sb.WriteString(h.TranslatedText)
			sb.WriteString("\n")
		}
		prompt += sb.String()
	}

	translatedTitle, err := c.complete(ctx, prompt, title)
	if err != nil {
		return nil, &domain.TranslationError{Lang: lang, Err: fmt.Errorf("title: %w", err)}
	}

	translatedContent, err := c.complete(ctx, prompt, content)
	if err != nil {
		return nil, &domain.TranslationError{Lang: lang, Err: fmt.Errorf("content: %w", err)}
	}

	return &Result{Title: translatedTitle, Content: translatedContent}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, prompt, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: "Translate this Japanese text:\n\n" + text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("chat completions %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
