//go:build unit

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/services"
	"github.com/rios0rios0/mvnupdate/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/mvnupdate/test/infrastructure/repositorydoubles"
)

func newInspector(search *doubles.SpySearchRepository, ignore ...string) *services.Inspector {
	return services.NewInspector(
		services.NewVersionResolver(true),
		services.NewUpdateChecker(search, 200),
		services.NewIgnoreMatcher(ignore),
	)
}

func TestInspectorInspect(t *testing.T) {
	t.Parallel()

	t.Run("should report an outdated literal with a version element fix", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "a").WithVersion("1.0").BuildEntry()
		model := &doubles.StubProjectModel{Direct: []entities.DependencyEntry{entry.DependencyEntry}}
		search := &doubles.SpySearchRepository{Results: doubles.Versions("g", "a", "1.0", "1.1")}
		sink := &doubles.SpyDiagnosticSink{}

		// when
		findings, err := newInspector(search).Inspect(context.Background(), model, sink)

		// then
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "1.0", findings[0].CurrentVersion)
		assert.Equal(t, "1.1", findings[0].LatestVersion)
		assert.Equal(t, entities.FixReplaceLiteral, findings[0].FixKind())
		assert.Equal(t, entry.VersionElement, findings[0].Fix.Target)
		require.Len(t, sink.Diagnostics, 1)
		assert.Equal(t, "Replace version element with 1.1", sink.Diagnostics[0].FixName)
	})

	t.Run("should report a property-backed version with a property fix", func(t *testing.T) {
		t.Parallel()

		// given
		definition := entities.ElementHandle{Path: "project[1]/properties[1]/lib.version[1]", Text: "1.0"}
		entry := entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "a").
			WithVersion("${lib.version}").WithResolvedVersion("1.0").BuildEntry()
		model := &doubles.StubProjectModel{
			Direct: []entities.DependencyEntry{entry.DependencyEntry},
			Properties: map[string]entities.PropertyDefinition{
				"lib.version": {Name: "lib.version", Value: "1.0", Element: &definition},
			},
		}
		search := &doubles.SpySearchRepository{Results: doubles.Versions("g", "a", "2.0")}
		sink := &doubles.SpyDiagnosticSink{}

		// when
		findings, err := newInspector(search).Inspect(context.Background(), model, sink)

		// then
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, entities.FixReplaceProperty, findings[0].FixKind())
		assert.Equal(t, definition, findings[0].Fix.Target)
		assert.Equal(t, entry.VersionElement, sink.Diagnostics[0].Anchor)
	})

	t.Run("should report an inherited version without offering a fix", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "sibling").
			WithVersion("${project.version}").WithResolvedVersion("1.0").BuildEntry()
		model := &doubles.StubProjectModel{
			Direct: []entities.DependencyEntry{entry.DependencyEntry},
			Properties: map[string]entities.PropertyDefinition{
				"project.version": {Name: "project.version", Value: "1.0"},
			},
		}
		search := &doubles.SpySearchRepository{Results: doubles.Versions("g", "sibling", "1.0", "1.1")}
		sink := &doubles.SpyDiagnosticSink{}

		// when
		findings, err := newInspector(search).Inspect(context.Background(), model, sink)

		// then
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, entities.FixNone, findings[0].FixKind())
		require.Len(t, sink.Diagnostics, 1)
		assert.Nil(t, sink.Diagnostics[0].Fix)
		assert.Empty(t, sink.Diagnostics[0].FixName)
	})

	t.Run("should report nothing for up-to-date and unresolvable declarations", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{Direct: []entities.DependencyEntry{
			entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "current").WithVersion("2.0").
				WithIndex(1).BuildEntry().DependencyEntry,
			entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "unresolved").WithVersion("${nope}").
				WithIndex(2).BuildEntry().DependencyEntry,
		}}
		search := &doubles.SpySearchRepository{ByPattern: map[string][]entities.ArtifactVersion{
			"g:current:": doubles.Versions("g", "current", "1.0", "2.0"),
		}}
		sink := &doubles.SpyDiagnosticSink{}

		// when
		findings, err := newInspector(search).Inspect(context.Background(), model, sink)

		// then
		require.NoError(t, err)
		assert.Empty(t, findings)
		assert.Empty(t, sink.Diagnostics)
		assert.Equal(t, []string{"g:current:"}, search.Patterns)
	})

	t.Run("should skip ignored coordinates before searching", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{Direct: []entities.DependencyEntry{
			entitybuilders.NewDeclarationBuilder().WithCoordinates("org.internal", "core").BuildEntry().DependencyEntry,
		}}
		search := &doubles.SpySearchRepository{Results: doubles.Versions("org.internal", "core", "9.0")}

		// when
		findings, err := newInspector(search, "org.internal").Inspect(context.Background(), model, nil)

		// then
		require.NoError(t, err)
		assert.Empty(t, findings)
		assert.Empty(t, search.Patterns)
	})

	t.Run("should stop before the next declaration once cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{Direct: []entities.DependencyEntry{
			entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "first").WithIndex(1).BuildEntry().DependencyEntry,
			entitybuilders.NewDeclarationBuilder().WithCoordinates("g", "second").WithIndex(2).BuildEntry().DependencyEntry,
		}}
		search := &doubles.SpySearchRepository{ByPattern: map[string][]entities.ArtifactVersion{
			"g:first:":  doubles.Versions("g", "first", "2.0"),
			"g:second:": doubles.Versions("g", "second", "2.0"),
		}}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sink := &doubles.SpyDiagnosticSink{OnReport: func(entities.Diagnostic) { cancel() }}

		// when
		findings, err := newInspector(search).Inspect(ctx, model, sink)

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Len(t, findings, 1)
		assert.Len(t, sink.Diagnostics, 1)
		assert.Equal(t, []string{"g:first:"}, search.Patterns)
	})

	t.Run("should not search at all when cancelled up front", func(t *testing.T) {
		t.Parallel()

		// given
		model := &doubles.StubProjectModel{Direct: []entities.DependencyEntry{
			entitybuilders.NewDeclarationBuilder().BuildEntry().DependencyEntry,
		}}
		search := &doubles.SpySearchRepository{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		findings, err := newInspector(search).Inspect(ctx, model, &doubles.SpyDiagnosticSink{})

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, findings)
		assert.Empty(t, search.Patterns)
	})
}
