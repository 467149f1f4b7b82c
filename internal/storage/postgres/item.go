package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"dqx_news/internal/domain"
)

type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

type itemRow struct {
	ID              string     `db:"id"`
	Title           string     `db:"title"`
	Category        int        `db:"category"`
	URL             string     `db:"url"`
	PublishedAt     time.Time  `db:"published_at"`
	FirstSeenAt     time.Time  `db:"first_seen_at"`
	LastSeenAt      time.Time  `db:"last_seen_at"`
	Content         *string    `db:"content"`
	SourceUpdatedAt *time.Time `db:"source_updated_at"`
	BodyFetchedAt   *time.Time `db:"body_fetched_at"`
	BodyLockedAt    *time.Time `db:"body_locked_at"`
}

func (r itemRow) toDomain() *domain.Item {
	return &domain.Item{
		ID:              r.ID,
		Title:           r.Title,
		Category:        domain.Category(r.Category),
		URL:             r.URL,
		PublishedAt:     r.PublishedAt,
		FirstSeenAt:     r.FirstSeenAt,
		LastSeenAt:      r.LastSeenAt,
		Content:         r.Content,
		SourceUpdatedAt: r.SourceUpdatedAt,
		BodyFetchedAt:   r.BodyFetchedAt,
		BodyLockedAt:    r.BodyLockedAt,
	}
}

const itemColumns = `id, title, category, url, published_at, first_seen_at, last_seen_at,
		content, source_updated_at, body_fetched_at, body_locked_at`

func (s *ItemStore) Get(ctx context.Context, id string) (*domain.Item, error) {
	var row itemRow
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	err := s.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// UpsertMetadata inserts a newly discovered item. A re-seen id only bumps
// last_seen_at; the stored title, category and publish time are never
// overwritten from a listing re-render.
func (s *ItemStore) UpsertMetadata(ctx context.Context, item *domain.Item, seenAt time.Time) error {
	query := `
		INSERT INTO items (id, title, category, url, published_at, first_seen_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (id) DO UPDATE SET
			last_seen_at = EXCLUDED.last_seen_at`

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		int(item.Category),
		item.URL,
		item.PublishedAt,
		seenAt,
	)
	return err
}

// ExistingIDs returns which of the given ids are already stored.
func (s *ItemStore) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	if len(ids) == 0 {
		return make(map[string]bool), nil
	}

	query := `SELECT id FROM items WHERE id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.StringArray(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = true
	}

	return result, rows.Err()
}

// TryClaimBodyLock attempts to take the body-fetch lock in one conditional
// update. A lock held since before staleBefore is treated as abandoned and
// taken over. Returns whether this caller now holds the lock.
func (s *ItemStore) TryClaimBodyLock(ctx context.Context, id string, now, staleBefore time.Time) (bool, error) {
	query := `
		UPDATE items SET body_locked_at = $2
		WHERE id = $1 AND (body_locked_at IS NULL OR body_locked_at < $3)`

	res, err := s.db.ExecContext(ctx, query, id, now, staleBefore)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// CommitBody stores the fetched body and releases the lock in one statement.
func (s *ItemStore) CommitBody(ctx context.Context, id, content string, sourceUpdatedAt *time.Time, fetchedAt time.Time) error {
	query := `
		UPDATE items SET
			content = $2,
			body_fetched_at = $3,
			source_updated_at = $4,
			body_locked_at = NULL
		WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, content, fetchedAt, sourceUpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ReleaseBodyLock clears the lock without committing content. Used when the
// body fetch failed.
func (s *ItemStore) ReleaseBodyLock(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE items SET body_locked_at = NULL WHERE id = $1`, id)
	return err
}

// InvalidateBody nulls content, fetch timestamp and lock in one atomic
// update, forcing the next body read to re-fetch.
func (s *ItemStore) InvalidateBody(ctx context.Context, id string) error {
	query := `
		UPDATE items SET
			content = NULL,
			body_fetched_at = NULL,
			source_updated_at = NULL,
			body_locked_at = NULL
		WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *ItemStore) ListItems(ctx context.Context, category *domain.Category, offset, limit int) ([]domain.Item, error) {
	var rows []itemRow
	var err error

	if category != nil {
		query := `SELECT ` + itemColumns + ` FROM items WHERE category = $1
			ORDER BY published_at DESC, id LIMIT $2 OFFSET $3`
		err = s.db.SelectContext(ctx, &rows, query, int(*category), limit, offset)
	} else {
		query := `SELECT ` + itemColumns + ` FROM items
			ORDER BY published_at DESC, id LIMIT $1 OFFSET $2`
		err = s.db.SelectContext(ctx, &rows, query, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, *r.toDomain())
	}
	return items, nil
}

// ListFetched returns every item with a committed body. The recheck queue is
// derived from this read.
func (s *ItemStore) ListFetched(ctx context.Context) ([]domain.Item, error) {
	var rows []itemRow
	query := `SELECT ` + itemColumns + ` FROM items WHERE body_fetched_at IS NOT NULL`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, *r.toDomain())
	}
	return items, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
