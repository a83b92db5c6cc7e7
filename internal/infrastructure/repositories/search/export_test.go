//go:build unit

package search

import "time"

// SetClock replaces the clock used to stamp and expire cache entries.
func (r *CachedSearchRepository) SetClock(now func() time.Time) {
	r.now = now
}
