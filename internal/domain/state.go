package domain

import "time"

// SyncState is per-dataset run bookkeeping. The caller-supplied since
// boundary stays authoritative for extraction; this only records what ran.
type SyncState struct {
	ID        int64     `db:"id"`
	Dataset   string    `db:"dataset"`
	LastRunAt time.Time `db:"last_run_at"`
	TotalRows int64     `db:"total_rows"`
}
