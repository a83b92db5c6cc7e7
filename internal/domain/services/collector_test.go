//go:build unit

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/services"
	"github.com/rios0rios0/mvnupdate/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/mvnupdate/test/infrastructure/repositorydoubles"
)

func TestCollectDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should collect direct dependencies before managed ones", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{
			Direct: []entities.DependencyEntry{
				entitybuilders.NewDeclarationBuilder().WithCoordinates("junit", "junit").WithVersion("4.12").
					BuildEntry().DependencyEntry,
			},
			Managed: []entities.DependencyEntry{
				entitybuilders.NewDeclarationBuilder().WithCoordinates("org.slf4j", "slf4j-api").WithVersion("1.7.0").
					InManagement().BuildEntry().DependencyEntry,
			},
		}

		// when
		declarations := services.CollectDependencies(model)

		// then
		require.Len(t, declarations, 2)
		assert.Equal(t, "junit:junit", declarations[0].Coordinate())
		assert.Equal(t, entities.SectionDependencies, declarations[0].Section)
		assert.Equal(t, "org.slf4j:slf4j-api", declarations[1].Coordinate())
		assert.Equal(t, entities.SectionDependencyManagement, declarations[1].Section)
	})

	t.Run("should skip entries with a blank coordinate or version", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{
			Direct: []entities.DependencyEntry{
				{GroupID: "", ArtifactID: "a", RawVersion: "1.0"},
				{GroupID: "g", ArtifactID: "  ", RawVersion: "1.0"},
				{GroupID: "g", ArtifactID: "a", RawVersion: ""},
				{GroupID: "g", ArtifactID: "b", RawVersion: "2.0", ResolvedVersion: "2.0"},
			},
		}

		// when
		declarations := services.CollectDependencies(model)

		// then
		require.Len(t, declarations, 1)
		assert.Equal(t, "g:b:2.0", declarations[0].Key())
	})

	t.Run("should keep the first position and the last location of a duplicated triple", func(t *testing.T) {
		t.Parallel()

		// given
		first := entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "a").WithVersion("1.0").WithIndex(1).
			BuildEntry().DependencyEntry
		other := entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "other").WithVersion("1.0").WithIndex(2).
			BuildEntry().DependencyEntry
		managed := entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "a").WithVersion("1.0").WithIndex(1).
			InManagement().BuildEntry().DependencyEntry
		model := &doubles.StubProjectModel{
			Direct:  []entities.DependencyEntry{first, other},
			Managed: []entities.DependencyEntry{managed},
		}

		// when
		declarations := services.CollectDependencies(model)

		// then
		require.Len(t, declarations, 2)
		assert.Equal(t, "g:a:1.0", declarations[0].Key())
		assert.Equal(t, entities.SectionDependencyManagement, declarations[0].Section)
		assert.Equal(t, managed.VersionElement, declarations[0].Version)
		assert.Equal(t, "g:other:1.0", declarations[1].Key())
	})

	t.Run("should keep declarations of the same artifact with different versions", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{
			Direct: []entities.DependencyEntry{
				{GroupID: "g", ArtifactID: "a", RawVersion: "1.0"},
				{GroupID: "g", ArtifactID: "a", RawVersion: "2.0"},
			},
		}

		// when
		declarations := services.CollectDependencies(model)

		// then
		assert.Len(t, declarations, 2)
	})

	t.Run("should return nothing for a model without dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{}

		// when
		declarations := services.CollectDependencies(model)

		// then
		assert.Empty(t, declarations)
	})
}
