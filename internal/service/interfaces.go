package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"dqx_news/internal/domain"
	"dqx_news/internal/translator"
)

type ItemStore interface {
	Get(ctx context.Context, id string) (*domain.Item, error)
	UpsertMetadata(ctx context.Context, item *domain.Item, seenAt time.Time) error
	ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error)
	TryClaimBodyLock(ctx context.Context, id string, now, staleBefore time.Time) (bool, error)
	CommitBody(ctx context.Context, id, content string, sourceUpdatedAt *time.Time, fetchedAt time.Time) error
	ReleaseBodyLock(ctx context.Context, id string) error
	InvalidateBody(ctx context.Context, id string) error
	ListItems(ctx context.Context, category *domain.Category, offset, limit int) ([]domain.Item, error)
	ListFetched(ctx context.Context) ([]domain.Item, error)
}

type TranslationStore interface {
	Get(ctx context.Context, itemID, lang string) (*domain.Translation, error)
	TryClaimLock(ctx context.Context, itemID, lang string, now, staleBefore time.Time) (bool, error)
	Commit(ctx context.Context, itemID, lang, title, content string, translatedAt time.Time) error
	ReleaseLock(ctx context.Context, itemID, lang string) error
	Delete(ctx context.Context, itemID, lang string) error
}

type GlossaryStore interface {
	Replace(ctx context.Context, lang string, entries []domain.GlossaryEntry) error
	ListByLang(ctx context.Context, lang string) ([]domain.GlossaryEntry, error)
}

type Lister interface {
	FetchPage(ctx context.Context, category domain.Category, page int) ([]domain.Item, int, error)
}

type BodyFetcher interface {
	FetchBody(ctx context.Context, id string) (string, *time.Time, error)
}

type Translator interface {
	Translate(ctx context.Context, title, content, lang string, hints []domain.GlossaryEntry) (*translator.Result, error)
}

// BodyProvider hands out items with their body present, fetching on demand.
type BodyProvider interface {
	GetBody(ctx context.Context, id string) (*domain.Item, error)
}

type Publisher interface {
	Publish(ctx context.Context, item *domain.Item, discovered bool) error
	Close() error
}
