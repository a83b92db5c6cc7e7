//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// SpyVersionControlRepository implements repositories.VersionControlRepository.
type SpyVersionControlRepository struct {
	Hash      string
	CommitErr error
	Inputs    []repositories.CommitInput
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

func (r *SpyVersionControlRepository) Commit(_ context.Context, input repositories.CommitInput) (string, error) {
	r.Inputs = append(r.Inputs, input)
	return r.Hash, r.CommitErr
}
