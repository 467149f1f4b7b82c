package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dqx_news/internal/config"
	"dqx_news/internal/domain"
)

// ScanService walks paginated category listings and records discovered
// items. Re-seen items only get their last-seen marker bumped; published
// metadata is never overwritten from a listing re-render.
type ScanService struct {
	lister    Lister
	items     ItemStore
	publisher Publisher
	logger    *slog.Logger
	cfg       config.ScanConfig
}

func NewScanService(
	lister Lister,
	items ItemStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.ScanConfig,
) *ScanService {
	return &ScanService{
		lister:    lister,
		items:     items,
		publisher: publisher,
		logger:    logger.With("component", "scan"),
		cfg:       cfg,
	}
}

// ScanCategory walks a category's listing pages. In incremental mode the
// walk stops once fewer than half of a page's items are new: listings are
// reverse-chronological, so a low novelty ratio means the rest is known
// history. Full mode walks until the source runs out of pages or items.
func (s *ScanService) ScanCategory(ctx context.Context, category domain.Category, mode domain.ScanMode) (*domain.ScanStats, error) {
	startTime := time.Now()
	stats := &domain.ScanStats{Category: category, Mode: mode}

	s.logger.Info("starting scan",
		"category", category.String(),
		"mode", string(mode),
	)

	for page := 1; ; page++ {
		if mode == domain.ScanIncremental && page > s.cfg.MaxPages {
			break
		}

		items, totalPages, err := s.lister.FetchPage(ctx, category, page)
		if err != nil {
			return stats, fmt.Errorf("fetch page %d: %w", page, err)
		}
		stats.Pages++

		items = dedupeByID(items)
		if len(items) == 0 {
			break
		}
		stats.Fetched += len(items)

		ids := make([]string, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		existing, err := s.items.ExistingIDs(ctx, ids)
		if err != nil {
			return stats, fmt.Errorf("check existing ids: %w", err)
		}

		seenAt := time.Now()
		newCount := 0
		for i := range items {
			item := &items[i]
			isNew := !existing[item.ID]

			if err := s.items.UpsertMetadata(ctx, item, seenAt); err != nil {
				stats.Errors++
				s.logger.Error("upsert item", "id", item.ID, "error", err)
				continue
			}

			if !isNew {
				continue
			}
			newCount++

			if s.publisher != nil {
				if err := s.publisher.Publish(ctx, item, true); err != nil {
					stats.Errors++
					s.logger.Error("publish item", "id", item.ID, "error", err)
				} else {
					stats.Published++
				}
			}
		}
		stats.New += newCount
		stats.Seen += len(items) - newCount

		s.logger.Debug("scanned page",
			"category", category.String(),
			"page", page,
			"items", len(items),
			"new", newCount,
			"total_pages", totalPages,
		)

		// Novelty ratio below half means we have reached known history.
		if mode == domain.ScanIncremental && newCount*2 < len(items) {
			break
		}
		if page >= totalPages {
			break
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("scan completed",
		"category", category.String(),
		"pages", stats.Pages,
		"fetched", stats.Fetched,
		"new", stats.New,
		"seen", stats.Seen,
		"published", stats.Published,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// ScanAll scans every category in order, collecting per-category stats. A
// failed category does not stop the rest.
func (s *ScanService) ScanAll(ctx context.Context, mode domain.ScanMode) ([]domain.ScanStats, error) {
	var all []domain.ScanStats
	var firstErr error

	for _, category := range domain.Categories() {
		stats, err := s.ScanCategory(ctx, category, mode)
		if err != nil {
			s.logger.Error("scan category failed", "category", category.String(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
		if stats != nil {
			all = append(all, *stats)
		}
	}

	return all, firstErr
}

// dedupeByID drops repeated ids within one page, keeping the first
// occurrence. Listing pages can link the same article twice.
func dedupeByID(items []domain.Item) []domain.Item {
	seen := make(map[string]bool, len(items))
	result := items[:0]
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		result = append(result, item)
	}
	return result
}
