package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested item id is unknown.
	ErrNotFound = errors.New("item not found")

	// ErrLockTimeout means another executor held a lock past the maximum
	// wait. Transient; callers may retry.
	ErrLockTimeout = errors.New("timed out waiting for lock holder")
)

// FetchError wraps a failure to reach or parse the news source.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TranslationError wraps a translation backend failure.
type TranslationError struct {
	Lang string
	Err  error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translate to %s: %v", e.Lang, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }
