package domain

import "time"

// Translation is a translated rendering of an item, keyed by (ItemID, Lang).
// A row with empty content and the epoch sentinel in TranslatedAt is a
// placeholder created to hold the translation lock.
type Translation struct {
	ItemID       string
	Lang         string
	Title        string
	Content      string
	TranslatedAt time.Time
	LockedAt     *time.Time
}

// Usable reports whether the translation can be served: nobody holds the
// lock and the content is non-empty.
func (t *Translation) Usable() bool {
	return t.LockedAt == nil && t.Content != ""
}

// GlossaryEntry forces a specific translation for a source term. Entries are
// bulk-replaced on refresh and read-only everywhere else.
type GlossaryEntry struct {
	SourceText     string
	Lang           string
	TranslatedText string
	UpdatedAt      time.Time
}
