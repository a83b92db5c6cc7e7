//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// StubBuildToolRepository implements repositories.BuildToolRepository.
type StubBuildToolRepository struct {
	Maven35OrNewer bool
	Calls          int
}

var _ repositories.BuildToolRepository = (*StubBuildToolRepository)(nil)

func (r *StubBuildToolRepository) IsMaven35OrNewer(_ context.Context) bool {
	r.Calls++
	return r.Maven35OrNewer
}

// Factory returns a build tool factory that always hands out r.
func (r *StubBuildToolRepository) Factory() func(entities.MavenSettings) repositories.BuildToolRepository {
	return func(entities.MavenSettings) repositories.BuildToolRepository {
		return r
	}
}
