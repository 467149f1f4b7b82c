package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"dqx_news/internal/domain"
)

type GlossaryStore struct {
	db *sqlx.DB
}

func NewGlossaryStore(db *sqlx.DB) *GlossaryStore {
	return &GlossaryStore{db: db}
}

type glossaryRow struct {
	SourceText     string    `db:"source_text"`
	Lang           string    `db:"lang"`
	TranslatedText string    `db:"translated_text"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Replace swaps out all glossary entries for a language in one transaction.
func (s *GlossaryStore) Replace(ctx context.Context, lang string, entries []domain.GlossaryEntry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM glossary_entries WHERE lang = $1`, lang); err != nil {
		return err
	}

	if len(entries) > 0 {
		now := time.Now()

		var sb strings.Builder
		sb.WriteString("INSERT INTO glossary_entries (source_text, lang, translated_text, updated_at) VALUES ")
		args := make([]interface{}, 0, len(entries)*4)

		for i, e := range entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 4
			sb.WriteString("($")
			sb.WriteString(strconv.Itoa(base + 1))
			sb.WriteString(", $")
			sb.WriteString(strconv.Itoa(base + 2))
			sb.WriteString(", $")
			sb.WriteString(strconv.Itoa(base + 3))
			sb.WriteString(", $")
			sb.WriteString(strconv.Itoa(base + 4))
			sb.WriteString(")")
			args = append(args, e.SourceText, lang, e.TranslatedText, now)
		}
		sb.WriteString(" ON CONFLICT (source_text, lang) DO UPDATE SET translated_text = EXCLUDED.translated_text, updated_at = EXCLUDED.updated_at")

		if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *GlossaryStore) ListByLang(ctx context.Context, lang string) ([]domain.GlossaryEntry, error) {
	var rows []glossaryRow
	query := `
		SELECT source_text, lang, translated_text, updated_at
		FROM glossary_entries
		WHERE lang = $1
		ORDER BY source_text`

	if err := s.db.SelectContext(ctx, &rows, query, lang); err != nil {
		return nil, err
	}

	entries := make([]domain.GlossaryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.GlossaryEntry{
			SourceText:     r.SourceText,
			Lang:           r.Lang,
			TranslatedText: r.TranslatedText,
			UpdatedAt:      r.UpdatedAt,
		})
	}
	return entries, nil
}
