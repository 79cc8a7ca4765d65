package history

import (
	"time"

	"github.com/sandevgo/argand/internal/core"
)

const RetentionWindow = 30 * 24 * time.Hour

var retentionMillis = RetentionWindow.Milliseconds()

// expired reports whether an entry created at ts (ms) falls outside the window.
// An entry exactly on the boundary is kept.
func expired(now time.Time, ts int64) bool {
	return now.UnixMilli()-ts > retentionMillis
}

// prune returns the entries still inside the window, preserving order, and
// the number of evicted ones.
func prune(now time.Time, entries []core.HistoryEntry) ([]core.HistoryEntry, int) {
	kept := make([]core.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if expired(now, e.Timestamp) {
			continue
		}
		kept = append(kept, e)
	}
	return kept, len(entries) - len(kept)
}
