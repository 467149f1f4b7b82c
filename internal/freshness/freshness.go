// Package freshness computes recheck schedules for fetched article bodies
// and staleness of translations. Everything here is pure; callers pass in
// the current time.
package freshness

import "time"

const (
	// MinInterval is the recheck floor for freshly published articles.
	MinInterval = 1 * time.Hour
	// MaxInterval caps rechecks for old, effectively frozen articles.
	MaxInterval = 168 * time.Hour
)

// RecheckInterval returns how long a fetched body stays trusted before it
// should be re-verified against the source. Young articles get edited often
// shortly after publication, so the interval scales with age: one hour of
// trust per day of age, clamped to [1h, 168h].
func RecheckInterval(publishedAt, now time.Time) time.Duration {
	age := now.Sub(publishedAt)
	interval := age / 24
	if interval < MinInterval {
		return MinInterval
	}
	if interval > MaxInterval {
		return MaxInterval
	}
	return interval
}

// NextCheckAt returns the instant a body fetched at fetchedAt becomes due
// for re-verification.
func NextCheckAt(publishedAt, fetchedAt, now time.Time) time.Time {
	return fetchedAt.Add(RecheckInterval(publishedAt, now))
}

// IsDueForCheck reports whether an item's body should be re-verified. A nil
// fetchedAt means the body was never fetched, which is always due. The
// boundary is inclusive: nextCheckAt == now counts as due.
func IsDueForCheck(publishedAt time.Time, fetchedAt *time.Time, now time.Time) bool {
	if fetchedAt == nil {
		return true
	}
	return !now.Before(NextCheckAt(publishedAt, *fetchedAt, now))
}

// IsTranslationStale reports whether the source changed after the
// translation was produced. Unlike body rechecks this is a plain comparison;
// a translation needs no periodic re-verification absent a content change.
func IsTranslationStale(sourceChangedAt, translatedAt time.Time) bool {
	return sourceChangedAt.After(translatedAt)
}
