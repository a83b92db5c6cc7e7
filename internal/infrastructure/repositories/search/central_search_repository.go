package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

type solrResponse struct {
	Response struct {
		NumFound int `json:"numFound"`
		Docs     []struct {
			GroupID    string `json:"g"`
			ArtifactID string `json:"a"`
			Version    string `json:"v"`
		} `json:"docs"`
	} `json:"response"`
}

// CentralSearchRepository queries the Maven Central Solr search API in
// "gav" mode, which lists every published version of an artifact.
type CentralSearchRepository struct {
	baseURL string
	client  *http.Client
}

// NewCentralSearchRepository creates a search repository backed by
// settings.CentralURL.
func NewCentralSearchRepository(settings entities.SearchSettings) repositories.SearchRepository {
	return &CentralSearchRepository{
		baseURL: trimBaseURL(settings.CentralURL),
		client:  &http.Client{Timeout: settings.Timeout},
	}
}

func (r *CentralSearchRepository) Name() string { return entities.SearchProviderCentral }

func (r *CentralSearchRepository) Search(
	ctx context.Context,
	pattern string,
	limit int,
) ([]entities.ArtifactVersion, error) {
	groupID, artifactID, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("g:%q AND a:%q", groupID, artifactID))
	query.Set("core", "gav")
	query.Set("rows", strconv.Itoa(limit))
	query.Set("wt", "json")

	body, err := get(ctx, r.client, r.baseURL+"?"+query.Encode(), "application/json")
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var decoded solrResponse
	if unmarshalErr := json.Unmarshal(body, &decoded); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to decode search response for %s: %w", pattern, unmarshalErr)
	}

	result := make([]entities.ArtifactVersion, 0, len(decoded.Response.Docs))
	for _, doc := range decoded.Response.Docs {
		if doc.Version == "" {
			continue
		}
		result = append(result, entities.ArtifactVersion{
			GroupID:    doc.GroupID,
			ArtifactID: doc.ArtifactID,
			Version:    doc.Version,
		})
	}
	return result, nil
}
