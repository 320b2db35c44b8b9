package storage

import "time"

// Entry is one raw key/value row.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// ArchiveRun records one archive-and-clear of a key.
type ArchiveRun struct {
	ID          int64
	Key         string
	RanAt       time.Time
	RecordCount int
	ExportPath  *string
}
