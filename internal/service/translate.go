package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/width"

	"dqx_news/internal/config"
	"dqx_news/internal/domain"
	"dqx_news/internal/freshness"
)

// TranslationService serves translated articles, producing each (item, lang)
// translation at most once across concurrent executors. The lock lives on
// the translation row; a first-ever translation claims it by inserting a
// placeholder row, a re-translation by conditional update.
type TranslationService struct {
	translations TranslationStore
	glossary     GlossaryStore
	translator   Translator
	content      BodyProvider
	lock         config.LockConfig
	logger       *slog.Logger
}

func NewTranslationService(
	translations TranslationStore,
	glossary GlossaryStore,
	translator Translator,
	content BodyProvider,
	lock config.LockConfig,
	logger *slog.Logger,
) *TranslationService {
	return &TranslationService{
		translations: translations,
		glossary:     glossary,
		translator:   translator,
		content:      content,
		lock:         lock,
		logger:       logger.With("component", "translate"),
	}
}

// GetTranslation returns a usable, non-stale translation of the item,
// producing one if needed. The source body is fetched first when absent.
func (s *TranslationService) GetTranslation(ctx context.Context, id, lang string) (*domain.Translation, error) {
	item, err := s.content.GetBody(ctx, id)
	if err != nil {
		return nil, err
	}

	sourceChangedAt := item.PublishedAt
	if item.SourceUpdatedAt != nil && item.SourceUpdatedAt.After(sourceChangedAt) {
		sourceChangedAt = *item.SourceUpdatedAt
	}

	deadline := time.Now().Add(s.lock.MaxWait)

	for {
		tr, err := s.translations.Get(ctx, id, lang)
		if err != nil {
			return nil, err
		}
		if tr != nil && tr.Usable() && !freshness.IsTranslationStale(sourceChangedAt, tr.TranslatedAt) {
			return tr, nil
		}

		now := time.Now()
		claimed, err := s.translations.TryClaimLock(ctx, id, lang, now, now.Add(-s.lock.StaleThreshold))
		if err != nil {
			return nil, err
		}
		if claimed {
			return s.translateAndCommit(ctx, item, lang)
		}

		tr, err = s.waitForHolder(ctx, id, lang, sourceChangedAt, deadline)
		if err != nil {
			return nil, err
		}
		if tr != nil {
			return tr, nil
		}
		// The holder released without committing; retry the claim.
	}
}

// DeleteTranslation removes a stored translation, forcing re-translation on
// the next read.
func (s *TranslationService) DeleteTranslation(ctx context.Context, id, lang string) error {
	if err := s.translations.Delete(ctx, id, lang); err != nil {
		return err
	}
	s.logger.Info("deleted translation", "id", id, "lang", lang)
	return nil
}

// ReplaceGlossary swaps out the glossary for a language.
func (s *TranslationService) ReplaceGlossary(ctx context.Context, lang string, entries []domain.GlossaryEntry) error {
	if err := s.glossary.Replace(ctx, lang, entries); err != nil {
		return fmt.Errorf("replace glossary: %w", err)
	}
	s.logger.Info("replaced glossary", "lang", lang, "entries", len(entries))
	return nil
}

func (s *TranslationService) translateAndCommit(ctx context.Context, item *domain.Item, lang string) (*domain.Translation, error) {
	hints, err := s.glossaryHints(ctx, item, lang)
	if err != nil {
		s.release(ctx, item.ID, lang)
		return nil, fmt.Errorf("glossary hints: %w", err)
	}

	result, err := s.translator.Translate(ctx, item.Title, *item.Content, lang, hints)
	if err != nil {
		s.release(ctx, item.ID, lang)
		return nil, err
	}

	translatedAt := time.Now()
	if err := s.translations.Commit(ctx, item.ID, lang, result.Title, result.Content, translatedAt); err != nil {
		return nil, fmt.Errorf("commit translation %s/%s: %w", item.ID, lang, err)
	}

	return &domain.Translation{
		ItemID:       item.ID,
		Lang:         lang,
		Title:        result.Title,
		Content:      result.Content,
		TranslatedAt: translatedAt,
	}, nil
}

func (s *TranslationService) release(ctx context.Context, id, lang string) {
	if err := s.translations.ReleaseLock(ctx, id, lang); err != nil {
		s.logger.Error("release translation lock", "id", id, "lang", lang, "error", err)
	}
}

// glossaryHints returns the entries whose source text occurs in the item's
// title or body. Text is width-folded before matching so full-width and
// half-width renderings of the same term still match.
func (s *TranslationService) glossaryHints(ctx context.Context, item *domain.Item, lang string) ([]domain.GlossaryEntry, error) {
	entries, err := s.glossary.ListByLang(ctx, lang)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	haystack := width.Fold.String(item.Title + "\n" + *item.Content)

	var hints []domain.GlossaryEntry
	for _, e := range entries {
		if strings.Contains(haystack, width.Fold.String(e.SourceText)) {
			hints = append(hints, e)
		}
	}
	return hints, nil
}

// waitForHolder polls the translation row until the lock clears. A usable,
// non-stale result is returned; anything else means the holder failed and
// the caller should retry the claim (nil, nil). ErrLockTimeout past the
// deadline.
func (s *TranslationService) waitForHolder(ctx context.Context, id, lang string, sourceChangedAt time.Time, deadline time.Time) (*domain.Translation, error) {
	for {
		if time.Now().After(deadline) {
			return nil, domain.ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.lock.PollInterval):
		}

		tr, err := s.translations.Get(ctx, id, lang)
		if err != nil {
			return nil, err
		}
		if tr == nil {
			return nil, nil
		}
		if tr.LockedAt != nil {
			continue
		}
		if tr.Usable() && !freshness.IsTranslationStale(sourceChangedAt, tr.TranslatedAt) {
			return tr, nil
		}
		return nil, nil
	}
}
