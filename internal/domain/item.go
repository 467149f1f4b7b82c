package domain

import "time"

// Item is a news article discovered on a hiroba listing page. Content fields
// stay nil until the body is fetched on demand.
type Item struct {
	ID          string
	Title       string
	Category    Category
	URL         string
	PublishedAt time.Time
	FirstSeenAt time.Time
	LastSeenAt  time.Time

	Content         *string
	SourceUpdatedAt *time.Time
	BodyFetchedAt   *time.Time
	BodyLockedAt    *time.Time
}

// HasBody reports whether the article body has been fetched and committed.
// Content and BodyFetchedAt are always set or cleared together.
func (i *Item) HasBody() bool {
	return i.Content != nil && i.BodyFetchedAt != nil
}
