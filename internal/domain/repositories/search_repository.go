package repositories

import (
	"context"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

// SearchRepository abstracts a remote artifact index (Maven Central,
// deps.dev, a repository manager). Results may include artifacts other than
// the one asked for and may be unsorted or duplicated.
type SearchRepository interface {
	// Name returns the search provider identifier (e.g. "central").
	Name() string

	// Search runs a coordinate-prefix query such as "org.slf4j:slf4j-api:"
	// and returns at most limit published versions.
	Search(ctx context.Context, pattern string, limit int) ([]entities.ArtifactVersion, error)
}
