package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecheckInterval(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		age      time.Duration
		expected time.Duration
	}{
		{"just published", 0, time.Hour},
		{"30 minutes old", 30 * time.Minute, time.Hour},
		{"one day old", 24 * time.Hour, time.Hour},
		{"three days old", 72 * time.Hour, 3 * time.Hour},
		{"seven days old", 7 * 24 * time.Hour, 7 * time.Hour},
		{"one month old", 30 * 24 * time.Hour, 30 * time.Hour},
		{"168 days old hits cap", 168 * 24 * time.Hour, 168 * time.Hour},
		{"200 days old clamps", 200 * 24 * time.Hour, 168 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecheckInterval(now.Add(-tt.age), now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRecheckInterval_MonotonicAndBounded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	prev := time.Duration(0)
	for age := time.Duration(0); age <= 400*24*time.Hour; age += 6 * time.Hour {
		got := RecheckInterval(now.Add(-age), now)
		assert.GreaterOrEqual(t, got, prev, "interval must not decrease with age %v", age)
		assert.GreaterOrEqual(t, got, MinInterval)
		assert.LessOrEqual(t, got, MaxInterval)
		prev = got
	}
}

func TestIsDueForCheck_NeverFetched(t *testing.T) {
	now := time.Now()
	assert.True(t, IsDueForCheck(now.Add(-time.Hour), nil, now))
}

func TestIsDueForCheck_InclusiveBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	published := now.Add(-24 * time.Hour) // interval is exactly 1h
	fetched := now.Add(-time.Hour)        // nextCheckAt == now

	assert.True(t, IsDueForCheck(published, &fetched, now))

	justFetched := now.Add(-time.Hour + time.Second)
	assert.False(t, IsDueForCheck(published, &justFetched, now))
}

func TestIsDueForCheck_Scenarios(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Published 3 days ago, fetched 6 hours ago: interval 3h, overdue by 3h.
	publishedA := now.Add(-3 * 24 * time.Hour)
	fetchedA := now.Add(-6 * time.Hour)
	assert.True(t, IsDueForCheck(publishedA, &fetchedA, now))

	// Published 7 days ago, fetched 2 hours ago: interval 7h, not yet due.
	publishedB := now.Add(-7 * 24 * time.Hour)
	fetchedB := now.Add(-2 * time.Hour)
	assert.False(t, IsDueForCheck(publishedB, &fetchedB, now))
}

func TestNextCheckAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	published := now.Add(-3 * 24 * time.Hour)
	fetched := now.Add(-6 * time.Hour)

	assert.Equal(t, fetched.Add(3*time.Hour), NextCheckAt(published, fetched, now))
}

func TestIsTranslationStale(t *testing.T) {
	translatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsTranslationStale(translatedAt.Add(time.Second), translatedAt))
	assert.False(t, IsTranslationStale(translatedAt, translatedAt))
	assert.False(t, IsTranslationStale(translatedAt.Add(-time.Hour), translatedAt))
}
