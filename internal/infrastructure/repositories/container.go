package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/mvnupdate/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/maven"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/pom"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/search"
)

// BuildToolFactory creates the build tool probe once the settings are known.
type BuildToolFactory func(settings entities.MavenSettings) domainRepos.BuildToolRepository

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register search registry with all search factories
	if err := container.Provide(func() *SearchRegistry {
		reg := NewSearchRegistry()
		reg.Register(entities.SearchProviderMetadata, search.NewMetadataSearchRepository)
		reg.Register(entities.SearchProviderCentral, search.NewCentralSearchRepository)
		reg.Register(entities.SearchProviderDepsDev, search.NewDepsDevSearchRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register sink registry with all output formats
	if err := container.Provide(NewDefaultSinkRegistry); err != nil {
		return err
	}

	if err := container.Provide(func() BuildToolFactory {
		return maven.NewVersionProbe
	}); err != nil {
		return err
	}
	if err := container.Provide(pom.NewProjectRepository); err != nil {
		return err
	}
	if err := container.Provide(pom.NewFixExecutor); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewVersionControlRepository); err != nil {
		return err
	}

	return nil
}
