package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dqx_news/internal/config"
	"dqx_news/internal/domain"
)

// ContentService serves article bodies, fetching them from the source at
// most once per item across all concurrent executors. Mutual exclusion is a
// nullable lock timestamp on the item row, claimed through the store's
// conditional update; waiters poll the row until the holder commits or the
// lock clears.
type ContentService struct {
	items   ItemStore
	fetcher BodyFetcher
	lock    config.LockConfig
	logger  *slog.Logger
}

func NewContentService(items ItemStore, fetcher BodyFetcher, lock config.LockConfig, logger *slog.Logger) *ContentService {
	return &ContentService{
		items:   items,
		fetcher: fetcher,
		lock:    lock,
		logger:  logger.With("component", "content"),
	}
}

func (s *ContentService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.Get(ctx, id)
}

func (s *ContentService) ListItems(ctx context.Context, category *domain.Category, offset, limit int) ([]domain.Item, error) {
	return s.items.ListItems(ctx, category, offset, limit)
}

// GetBody returns the item with its body, fetching it if absent. Concurrent
// callers for the same never-fetched item converge on a single external
// fetch; the rest wait for the holder's commit.
func (s *ContentService) GetBody(ctx context.Context, id string) (*domain.Item, error) {
	deadline := time.Now().Add(s.lock.MaxWait)

	for {
		item, err := s.items.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if item.HasBody() {
			return item, nil
		}

		now := time.Now()
		claimed, err := s.items.TryClaimBodyLock(ctx, id, now, now.Add(-s.lock.StaleThreshold))
		if err != nil {
			return nil, err
		}
		if claimed {
			return s.fetchAndCommit(ctx, item)
		}

		item, err = s.waitForHolder(ctx, id, deadline)
		if err != nil {
			return nil, err
		}
		if item != nil {
			return item, nil
		}
		// The holder released without committing. Its failure is not
		// visible from here, so retry the claim instead of failing.
	}
}

// RecheckBody re-fetches the body of an already-fetched item to pick up
// source edits. Returns false without error when another executor holds the
// lock; rechecks are best-effort and the next cycle will retry.
func (s *ContentService) RecheckBody(ctx context.Context, id string) (bool, error) {
	now := time.Now()
	claimed, err := s.items.TryClaimBodyLock(ctx, id, now, now.Add(-s.lock.StaleThreshold))
	if err != nil {
		return false, err
	}
	if !claimed {
		return false, nil
	}

	item := &domain.Item{ID: id}
	if _, err := s.fetchAndCommit(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

// InvalidateBody drops the cached body, fetch timestamp and lock in one
// atomic update. The next GetBody triggers a fresh fetch.
func (s *ContentService) InvalidateBody(ctx context.Context, id string) error {
	if err := s.items.InvalidateBody(ctx, id); err != nil {
		return err
	}
	s.logger.Info("invalidated body", "id", id)
	return nil
}

func (s *ContentService) fetchAndCommit(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	content, sourceUpdatedAt, err := s.fetcher.FetchBody(ctx, item.ID)
	if err != nil {
		if relErr := s.items.ReleaseBodyLock(ctx, item.ID); relErr != nil {
			s.logger.Error("release body lock", "id", item.ID, "error", relErr)
		}
		return nil, fmt.Errorf("fetch body %s: %w", item.ID, err)
	}

	fetchedAt := time.Now()
	if err := s.items.CommitBody(ctx, item.ID, content, sourceUpdatedAt, fetchedAt); err != nil {
		return nil, fmt.Errorf("commit body %s: %w", item.ID, err)
	}

	item.Content = &content
	item.SourceUpdatedAt = sourceUpdatedAt
	item.BodyFetchedAt = &fetchedAt
	item.BodyLockedAt = nil
	return item, nil
}

// waitForHolder polls the item row until content appears (returned), the
// lock clears without content (nil, nil: the holder failed), or the
// deadline passes (ErrLockTimeout).
func (s *ContentService) waitForHolder(ctx context.Context, id string, deadline time.Time) (*domain.Item, error) {
	for {
		if time.Now().After(deadline) {
			return nil, domain.ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.lock.PollInterval):
		}

		item, err := s.items.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if item.HasBody() {
			return item, nil
		}
		if item.BodyLockedAt == nil {
			return nil, nil
		}
	}
}
