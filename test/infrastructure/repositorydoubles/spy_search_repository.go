//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// SpySearchRepository implements repositories.SearchRepository as a configurable spy.
type SpySearchRepository struct {
	// --- identity ---
	ProviderName string

	// --- Search ---
	Results   []entities.ArtifactVersion            // returned for any pattern missing from ByPattern
	ByPattern map[string][]entities.ArtifactVersion // per-pattern results
	SearchErr error
	Patterns  []string
	Limits    []int
}

var _ repositories.SearchRepository = (*SpySearchRepository)(nil)

func (s *SpySearchRepository) Name() string {
	if s.ProviderName == "" {
		return "spy"
	}
	return s.ProviderName
}

func (s *SpySearchRepository) Search(
	_ context.Context, pattern string, limit int,
) ([]entities.ArtifactVersion, error) {
	s.Patterns = append(s.Patterns, pattern)
	s.Limits = append(s.Limits, limit)
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	if results, ok := s.ByPattern[pattern]; ok {
		return results, nil
	}
	return s.Results, nil
}

// Versions builds search results for one artifact.
func Versions(groupID, artifactID string, versions ...string) []entities.ArtifactVersion {
	result := make([]entities.ArtifactVersion, 0, len(versions))
	for _, version := range versions {
		result = append(result, entities.ArtifactVersion{GroupID: groupID, ArtifactID: artifactID, Version: version})
	}
	return result
}
