package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// UpdateChecker asks a search service for the newest published version.
type UpdateChecker struct {
	search repositories.SearchRepository
	limit  int
}

// NewUpdateChecker creates a checker. A non-positive limit falls back to
// entities.DefaultSearchLimit.
func NewUpdateChecker(search repositories.SearchRepository, limit int) *UpdateChecker {
	if limit <= 0 {
		limit = entities.DefaultSearchLimit
	}
	return &UpdateChecker{search: search, limit: limit}
}

// FindLatest returns the newest published version of groupId:artifactId
// when it is strictly greater than current.
func (it *UpdateChecker) FindLatest(
	ctx context.Context,
	groupID, artifactID, current string,
) (string, bool) {
	pattern := fmt.Sprintf("%s:%s:", groupID, artifactID)
	results, err := it.search.Search(ctx, pattern, it.limit)
	if err != nil {
		logger.Warnf("[search] %s query %q failed: %v", it.search.Name(), pattern, err)
		return "", false
	}

	candidates := make([]entities.ComparableVersion, 0, len(results))
	for _, result := range results {
		if result.GroupID != groupID || result.ArtifactID != artifactID {
			continue
		}
		candidates = append(candidates, entities.NewComparableVersion(result.Version))
	}
	if len(candidates) == 0 {
		return "", false
	}

	// newest first; among equal maxima any one will do
	slices.SortFunc(candidates, func(a, b entities.ComparableVersion) int {
		return b.Compare(a)
	})

	latest := candidates[0].String()
	if strings.TrimSpace(latest) == "" {
		return "", false
	}
	if entities.CompareVersions(latest, current) <= 0 {
		return "", false
	}

	logger.Infof("[%s:%s] found latest version : %s", groupID, artifactID, latest)
	return latest, true
}
