//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// SpyFixRepository implements repositories.FixRepository. Every fix whose
// target path is not in Stale succeeds and appends "|<path>=<value>" to the
// content, so tests can see what was applied and in which order.
type SpyFixRepository struct {
	Stale   map[string]bool
	Applied []entities.FixAction
}

var _ repositories.FixRepository = (*SpyFixRepository)(nil)

func (r *SpyFixRepository) Apply(content []byte, fix entities.FixAction) ([]byte, bool) {
	if r.Stale[fix.Target.Path] {
		return content, false
	}
	r.Applied = append(r.Applied, fix)
	return append(append([]byte{}, content...), []byte("|"+fix.Target.Path+"="+fix.NewValue)...), true
}
