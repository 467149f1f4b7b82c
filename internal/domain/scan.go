package domain

import "time"

// ScanMode selects how far a listing walk goes.
type ScanMode string

const (
	// ScanIncremental stops once most of a page was already known.
	ScanIncremental ScanMode = "incremental"
	// ScanFull walks every page the source reports.
	ScanFull ScanMode = "full"
)

// ScanStats holds statistics about a single category scan.
type ScanStats struct {
	Category  Category
	Mode      ScanMode
	Pages     int
	Fetched   int
	New       int
	Seen      int
	Published int
	Errors    int
	Duration  time.Duration
}
