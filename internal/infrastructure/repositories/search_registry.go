package repositories

import (
	"context"
	"fmt"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/mvnupdate/internal/domain/repositories"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/search"
)

// SearchFactory is a constructor function that creates a SearchRepository
// from the search settings.
type SearchFactory func(settings entities.SearchSettings) domainRepos.SearchRepository

// SearchRegistry manages all registered artifact search implementations.
type SearchRegistry struct {
	factories map[string]SearchFactory
}

// NewSearchRegistry creates an empty search registry.
func NewSearchRegistry() *SearchRegistry {
	return &SearchRegistry{
		factories: make(map[string]SearchFactory),
	}
}

// Register adds a search factory under the given name (e.g. "central").
func (r *SearchRegistry) Register(name string, factory SearchFactory) {
	r.factories[name] = factory
}

// Get returns the search repository selected by settings.Search.Provider.
func (r *SearchRegistry) Get(settings *entities.Settings) (domainRepos.SearchRepository, error) {
	factory, ok := r.factories[settings.Search.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown search provider: %q (known: %v)", settings.Search.Provider, r.Names())
	}
	return factory(settings.Search), nil
}

// Open is Get plus the sqlite cache when settings.Cache.Path is set. The
// returned release function must be called once the pass is over.
func (r *SearchRegistry) Open(
	ctx context.Context,
	settings *entities.Settings,
) (domainRepos.SearchRepository, func(), error) {
	repository, err := r.Get(settings)
	if err != nil {
		return nil, nil, err
	}
	if settings.Cache.Path == "" {
		return repository, func() {}, nil
	}

	cached, err := search.NewCachedSearchRepository(ctx, repository, settings.Cache.Path, settings.Cache.TTL)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if closeErr := cached.Close(); closeErr != nil {
			logger.Warnf("[cache] failed to close %s: %v", settings.Cache.Path, closeErr)
		}
	}
	return cached, release, nil
}

// Names returns the sorted list of registered search provider names.
func (r *SearchRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
