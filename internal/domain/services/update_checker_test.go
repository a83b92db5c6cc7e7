//go:build unit

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/services"
	doubles "github.com/rios0rios0/mvnupdate/test/infrastructure/repositorydoubles"
)

func TestUpdateCheckerFindLatest(t *testing.T) {
	t.Parallel()

	t.Run("should query the coordinate prefix with the default limit", func(t *testing.T) {
		t.Parallel()

		// given
		search := &doubles.SpySearchRepository{}
		checker := services.NewUpdateChecker(search, 0)

		// when
		_, _ = checker.FindLatest(context.Background(), "org.slf4j", "slf4j-api", "1.7.0")

		// then
		assert.Equal(t, []string{"org.slf4j:slf4j-api:"}, search.Patterns)
		assert.Equal(t, []int{200}, search.Limits)
	})

	t.Run("should return the maximum when it is newer than the current version", func(t *testing.T) {
		t.Parallel()

		// given
		search := &doubles.SpySearchRepository{
			Results: doubles.Versions("g", "a", "1.0", "1.10", "1.9", "2.0-rc1", "1.2"),
		}
		checker := services.NewUpdateChecker(search, 200)

		// when
		latest, ok := checker.FindLatest(context.Background(), "g", "a", "1.0")

		// then
		assert.True(t, ok)
		assert.Equal(t, "2.0-rc1", latest)
	})

	t.Run("should ignore results for other artifacts", func(t *testing.T) {
		t.Parallel()

		// given
		results := doubles.Versions("g", "a", "1.0", "1.1")
		results = append(results, doubles.Versions("g", "a-extra", "9.0")...)
		results = append(results, doubles.Versions("g.other", "a", "8.0")...)
		checker := services.NewUpdateChecker(&doubles.SpySearchRepository{Results: results}, 200)

		// when
		latest, ok := checker.FindLatest(context.Background(), "g", "a", "1.0")

		// then
		assert.True(t, ok)
		assert.Equal(t, "1.1", latest)
	})

	t.Run("should report nothing when the current version is the newest", func(t *testing.T) {
		t.Parallel()

		// given
		search := &doubles.SpySearchRepository{Results: doubles.Versions("g", "a", "1.0", "0.9")}
		checker := services.NewUpdateChecker(search, 200)

		// when
		_, ok := checker.FindLatest(context.Background(), "g", "a", "1.0")

		// then
		assert.False(t, ok)
	})

	t.Run("should report nothing when the current version is newer than every result", func(t *testing.T) {
		t.Parallel()

		// given
		search := &doubles.SpySearchRepository{Results: doubles.Versions("g", "a", "1.0")}
		checker := services.NewUpdateChecker(search, 200)

		// when
		_, ok := checker.FindLatest(context.Background(), "g", "a", "2.0-SNAPSHOT")

		// then
		assert.False(t, ok)
	})

	t.Run("should treat an equal version spelled differently as not newer", func(t *testing.T) {
		t.Parallel()

		// given
		search := &doubles.SpySearchRepository{Results: doubles.Versions("g", "a", "1.0.0")}
		checker := services.NewUpdateChecker(search, 200)

		// when
		_, ok := checker.FindLatest(context.Background(), "g", "a", "1")

		// then
		assert.False(t, ok)
	})

	t.Run("should report nothing when the search fails", func(t *testing.T) {
		t.Parallel()

		// given
		search := &doubles.SpySearchRepository{SearchErr: errors.New("connection refused")}
		checker := services.NewUpdateChecker(search, 200)

		// when
		_, ok := checker.FindLatest(context.Background(), "g", "a", "1.0")

		// then
		assert.False(t, ok)
	})

	t.Run("should report nothing when there are no results", func(t *testing.T) {
		t.Parallel()

		// given
		search := &doubles.SpySearchRepository{Results: []entities.ArtifactVersion{}}
		checker := services.NewUpdateChecker(search, 200)

		// when
		_, ok := checker.FindLatest(context.Background(), "g", "a", "1.0")

		// then
		assert.False(t, ok)
	})
}
