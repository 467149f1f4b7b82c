package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"dqx_news/internal/domain"
)

type TranslationStore struct {
	db *sqlx.DB
}

func NewTranslationStore(db *sqlx.DB) *TranslationStore {
	return &TranslationStore{db: db}
}

type translationRow struct {
	ItemID       string     `db:"item_id"`
	Lang         string     `db:"lang"`
	Title        string     `db:"title"`
	Content      string     `db:"content"`
	TranslatedAt time.Time  `db:"translated_at"`
	LockedAt     *time.Time `db:"locked_at"`
}

func (r translationRow) toDomain() *domain.Translation {
	return &domain.Translation{
		ItemID:       r.ItemID,
		Lang:         r.Lang,
		Title:        r.Title,
		Content:      r.Content,
		TranslatedAt: r.TranslatedAt,
		LockedAt:     r.LockedAt,
	}
}

// Get returns the translation row, or nil when no row exists for the pair.
func (s *TranslationStore) Get(ctx context.Context, itemID, lang string) (*domain.Translation, error) {
	var row translationRow
	query := `
		SELECT item_id, lang, title, content, translated_at, locked_at
		FROM translations
		WHERE item_id = $1 AND lang = $2`

	err := s.db.GetContext(ctx, &row, query, itemID, lang)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// TryClaimLock attempts to take the translation lock. For an existing row it
// is a conditional update honoring the staleness threshold. For a missing
// row it inserts a placeholder with the lock held and empty content; the
// unique constraint makes the losing insert of a race a failed claim.
func (s *TranslationStore) TryClaimLock(ctx context.Context, itemID, lang string, now, staleBefore time.Time) (bool, error) {
	update := `
		UPDATE translations SET locked_at = $3
		WHERE item_id = $1 AND lang = $2
			AND (locked_at IS NULL OR locked_at < $4)`

	res, err := s.db.ExecContext(ctx, update, itemID, lang, now, staleBefore)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return true, nil
	}

	insert := `
		INSERT INTO translations (item_id, lang, title, content, translated_at, locked_at)
		VALUES ($1, $2, '', '', to_timestamp(0), $3)
		ON CONFLICT (item_id, lang) DO NOTHING`

	res, err = s.db.ExecContext(ctx, insert, itemID, lang, now)
	if err != nil {
		return false, err
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Commit stores the translated text and releases the lock in one statement.
func (s *TranslationStore) Commit(ctx context.Context, itemID, lang, title, content string, translatedAt time.Time) error {
	query := `
		UPDATE translations SET
			title = $3,
			content = $4,
			translated_at = $5,
			locked_at = NULL
		WHERE item_id = $1 AND lang = $2`

	res, err := s.db.ExecContext(ctx, query, itemID, lang, title, content, translatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ReleaseLock clears the lock without committing. The placeholder row keeps
// its empty content, which waiters read as "the holder failed".
func (s *TranslationStore) ReleaseLock(ctx context.Context, itemID, lang string) error {
	query := `UPDATE translations SET locked_at = NULL WHERE item_id = $1 AND lang = $2`
	_, err := s.db.ExecContext(ctx, query, itemID, lang)
	return err
}

// Delete removes the translation, forcing re-translation on the next read.
func (s *TranslationStore) Delete(ctx context.Context, itemID, lang string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM translations WHERE item_id = $1 AND lang = $2`,
		itemID, lang,
	)
	return err
}
