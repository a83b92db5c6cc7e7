//go:build unit

package search_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/search"
)

// recordingServer answers every request with status and body and remembers
// the last request it saw.
type recordingServer struct {
	*httptest.Server

	mu      sync.Mutex
	path    string
	query   string
	accept  string
	request int
}

func newRecordingServer(t *testing.T, status int, body string) *recordingServer {
	t.Helper()
	recorder := &recordingServer{}
	recorder.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.mu.Lock()
		recorder.path = r.URL.Path
		recorder.query = r.URL.Query().Get("q")
		recorder.accept = r.Header.Get("Accept")
		recorder.request++
		recorder.mu.Unlock()

		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(recorder.Close)
	return recorder
}

func (s *recordingServer) lastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

func settingsFor(url string) entities.SearchSettings {
	return entities.SearchSettings{
		Limit:         entities.DefaultSearchLimit,
		Timeout:       5 * time.Second,
		RepositoryURL: url + "/",
		CentralURL:    url + "/select",
		DepsDevURL:    url + "/v3",
	}
}

const metadataBody = `<?xml version="1.0" encoding="UTF-8"?>
<metadata>
  <groupId>org.slf4j</groupId>
  <artifactId>slf4j-api</artifactId>
  <versioning>
    <latest>2.0.9</latest>
    <release>2.0.9</release>
    <versions>
      <version>1.7.36</version>
      <version>2.0.0-alpha1</version>
      <version>2.0.7</version>
      <version>2.0.9</version>
    </versions>
  </versioning>
</metadata>`

func TestMetadataSearchRepository(t *testing.T) {
	t.Parallel()

	t.Run("should list every version from the artifact metadata", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRecordingServer(t, http.StatusOK, metadataBody)
		repository := search.NewMetadataSearchRepository(settingsFor(server.URL))

		// when
		versions, err := repository.Search(context.Background(), "org.slf4j:slf4j-api:", 10)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/org/slf4j/slf4j-api/maven-metadata.xml", server.lastPath())
		require.Len(t, versions, 4)
		assert.Equal(t, entities.ArtifactVersion{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Version: "1.7.36"}, versions[0])
		assert.Equal(t, "2.0.9", versions[3].Version)
		assert.Equal(t, entities.SearchProviderMetadata, repository.Name())
	})

	t.Run("should keep the newest versions when the limit is lower than the list", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRecordingServer(t, http.StatusOK, metadataBody)
		repository := search.NewMetadataSearchRepository(settingsFor(server.URL))

		// when
		versions, err := repository.Search(context.Background(), "org.slf4j:slf4j-api:", 2)

		// then
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, "2.0.7", versions[0].Version)
		assert.Equal(t, "2.0.9", versions[1].Version)
	})

	t.Run("should return nothing for an unknown artifact", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRecordingServer(t, http.StatusNotFound, "")
		repository := search.NewMetadataSearchRepository(settingsFor(server.URL))

		// when
		versions, err := repository.Search(context.Background(), "org.unknown:nothing:", 10)

		// then
		require.NoError(t, err)
		assert.Empty(t, versions)
	})

	t.Run("should fail on a server error", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRecordingServer(t, http.StatusInternalServerError, "boom")
		repository := search.NewMetadataSearchRepository(settingsFor(server.URL))

		// when
		versions, err := repository.Search(context.Background(), "org.slf4j:slf4j-api:", 10)

		// then
		require.Error(t, err)
		assert.Nil(t, versions)
	})

	t.Run("should fail on a body that is not metadata", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRecordingServer(t, http.StatusOK, "<metadata><versioning>")
		repository := search.NewMetadataSearchRepository(settingsFor(server.URL))

		// when
		_, err := repository.Search(context.Background(), "org.slf4j:slf4j-api:", 10)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode metadata")
	})
}

func TestCentralSearchRepository(t *testing.T) {
	t.Parallel()

	t.Run("should decode the documents of a gav query", func(t *testing.T) {
		t.Parallel()

		// given
		body := `{"response":{"numFound":3,"docs":[
			{"g":"junit","a":"junit","v":"4.13.2"},
			{"g":"junit","a":"junit","v":"4.13.1"},
			{"g":"junit","a":"junit","v":""}]}}`
		server := newRecordingServer(t, http.StatusOK, body)
		repository := search.NewCentralSearchRepository(settingsFor(server.URL))

		// when
		versions, err := repository.Search(context.Background(), "junit:junit:", 20)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/select", server.lastPath())
		server.mu.Lock()
		assert.Equal(t, `g:"junit" AND a:"junit"`, server.query)
		assert.Equal(t, "application/json", server.accept)
		server.mu.Unlock()
		assert.Equal(t, []entities.ArtifactVersion{
			{GroupID: "junit", ArtifactID: "junit", Version: "4.13.2"},
			{GroupID: "junit", ArtifactID: "junit", Version: "4.13.1"},
		}, versions)
	})

	t.Run("should fail on invalid JSON", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRecordingServer(t, http.StatusOK, "invalid-json")
		repository := search.NewCentralSearchRepository(settingsFor(server.URL))

		// when
		_, err := repository.Search(context.Background(), "junit:junit:", 20)

		// then
		require.Error(t, err)
	})
}

func TestDepsDevSearchRepository(t *testing.T) {
	t.Parallel()

	t.Run("should list package versions and keep the newest within the limit", func(t *testing.T) {
		t.Parallel()

		// given
		body := `{"versions":[
			{"versionKey":{"system":"MAVEN","name":"com.google.guava:guava","version":"30.0-jre"}},
			{"versionKey":{"system":"MAVEN","name":"com.google.guava:guava","version":"31.0-jre"}},
			{"versionKey":{"system":"MAVEN","name":"com.google.guava:guava","version":"33.0.0-jre"}}]}`
		server := newRecordingServer(t, http.StatusOK, body)
		repository := search.NewDepsDevSearchRepository(settingsFor(server.URL))

		// when
		versions, err := repository.Search(context.Background(), "com.google.guava:guava:", 2)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/v3/systems/maven/packages/com.google.guava:guava", server.lastPath())
		assert.Equal(t, []entities.ArtifactVersion{
			{GroupID: "com.google.guava", ArtifactID: "guava", Version: "31.0-jre"},
			{GroupID: "com.google.guava", ArtifactID: "guava", Version: "33.0.0-jre"},
		}, versions)
	})

	t.Run("should return nothing for an unknown package", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRecordingServer(t, http.StatusNotFound, `{"error":"not found"}`)
		repository := search.NewDepsDevSearchRepository(settingsFor(server.URL))

		// when
		versions, err := repository.Search(context.Background(), "com.example:missing:", 2)

		// then
		require.NoError(t, err)
		assert.Empty(t, versions)
	})
}

func TestSearchPatternValidation(t *testing.T) {
	t.Parallel()

	patterns := []string{"", "junit", ":junit:", "junit::"}
	for _, pattern := range patterns {
		t.Run(fmt.Sprintf("should reject %q without a request", pattern), func(t *testing.T) {
			t.Parallel()

			// given
			server := newRecordingServer(t, http.StatusOK, metadataBody)
			repository := search.NewMetadataSearchRepository(settingsFor(server.URL))

			// when
			_, err := repository.Search(context.Background(), pattern, 10)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid search pattern")
			server.mu.Lock()
			assert.Zero(t, server.request)
			server.mu.Unlock()
		})
	}
}
