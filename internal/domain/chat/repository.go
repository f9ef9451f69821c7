package chat

import "context"

// SnapshotRepository reads the recent attendance records forwarded to the
// assistant as context.
type SnapshotRepository interface {
	// RecentRecords returns the most recent records joined with the
	// employee directory, newest first, at most limit rows
	RecentRecords(ctx context.Context, limit int) ([]RecordSnapshot, error)
}
