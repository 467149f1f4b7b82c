// Package hiroba scrapes news listings and article bodies from the DQX
// Hiroba site.
package hiroba

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"dqx_news/internal/domain"
)

const (
	SourceID   = "hiroba"
	SourceName = "DQX Hiroba"
)

// Config holds hiroba source configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches listing pages and article bodies from hiroba.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new hiroba source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// FetchPage fetches one listing page for a category and returns its items
// plus the total page count the source currently reports. The count is
// re-derived from pagination markers on every call; hiroba may change it
// between pages.
func (s *Source) FetchPage(ctx context.Context, category domain.Category, page int) ([]domain.Item, int, error) {
	url := fmt.Sprintf("%s/sc/news/category/%d", s.baseURL, int(category))
	if page > 1 {
		url = fmt.Sprintf("%s/%d", url, page)
	}

	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		return nil, 0, &domain.FetchError{URL: url, Err: err}
	}

	items := s.parseListing(doc, category)
	totalPages := parseTotalPages(doc)

	s.logger.Debug("fetched listing page",
		"category", category.String(),
		"page", page,
		"items", len(items),
		"total_pages", totalPages,
	)

	return items, totalPages, nil
}

// FetchBody fetches the full article body. The second return value is the
// updated-at instant asserted on the detail page, nil when none was found.
func (s *Source) FetchBody(ctx context.Context, id string) (string, *time.Time, error) {
	url := fmt.Sprintf("%s/sc/news/detail/%s/", s.baseURL, id)

	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		return "", nil, &domain.FetchError{URL: url, Err: err}
	}

	content := parseBody(doc)
	if content == "" {
		return "", nil, &domain.FetchError{URL: url, Err: fmt.Errorf("no article content found")}
	}

	return content, parseUpdatedAt(doc), nil
}

func (s *Source) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	var doc *goquery.Document
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		doc, err = s.doRequest(ctx, url)
		if err == nil {
			return doc, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
