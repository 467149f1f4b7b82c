package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"dqx_news/internal/domain"
	"dqx_news/internal/freshness"
)

// RecheckItem is one overdue entry in the recheck queue.
type RecheckItem struct {
	ItemID      string
	Title       string
	Category    domain.Category
	NextCheckAt time.Time
}

// RecheckService derives the list of items whose cached body may be
// outdated. Pure read-side composition; it takes no locks and mutates
// nothing.
type RecheckService struct {
	items  ItemStore
	logger *slog.Logger
}

func NewRecheckService(items ItemStore, logger *slog.Logger) *RecheckService {
	return &RecheckService{
		items:  items,
		logger: logger.With("component", "recheck"),
	}
}

// RecheckQueue returns up to limit fetched items that are due for
// re-verification, most overdue first.
func (s *RecheckService) RecheckQueue(ctx context.Context, limit int) ([]RecheckItem, error) {
	items, err := s.items.ListFetched(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var due []RecheckItem
	for _, item := range items {
		if item.BodyFetchedAt == nil {
			continue
		}
		next := freshness.NextCheckAt(item.PublishedAt, *item.BodyFetchedAt, now)
		if next.After(now) {
			continue
		}
		due = append(due, RecheckItem{
			ItemID:      item.ID,
			Title:       item.Title,
			Category:    item.Category,
			NextCheckAt: next,
		})
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].NextCheckAt.Equal(due[j].NextCheckAt) {
			return due[i].ItemID < due[j].ItemID
		}
		return due[i].NextCheckAt.Before(due[j].NextCheckAt)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}
