package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

type versionKey struct {
	System  string `json:"system"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

type packageResponse struct {
	Versions []struct {
		VersionKey  versionKey `json:"versionKey"`
		PublishedAt string     `json:"publishedAt"`
		IsDefault   bool       `json:"isDefault"`
	} `json:"versions"`
}

// DepsDevSearchRepository lists package versions through the deps.dev v3 API.
type DepsDevSearchRepository struct {
	baseURL string
	client  *http.Client
}

// NewDepsDevSearchRepository creates a search repository backed by
// settings.DepsDevURL.
func NewDepsDevSearchRepository(settings entities.SearchSettings) repositories.SearchRepository {
	return &DepsDevSearchRepository{
		baseURL: trimBaseURL(settings.DepsDevURL),
		client:  &http.Client{Timeout: settings.Timeout},
	}
}

func (r *DepsDevSearchRepository) Name() string { return entities.SearchProviderDepsDev }

func (r *DepsDevSearchRepository) Search(
	ctx context.Context,
	pattern string,
	limit int,
) ([]entities.ArtifactVersion, error) {
	groupID, artifactID, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/systems/maven/packages/%s", r.baseURL, url.PathEscape(groupID+":"+artifactID))
	body, err := get(ctx, r.client, u, "application/json")
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var decoded packageResponse
	if unmarshalErr := json.Unmarshal(body, &decoded); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to decode package %s:%s: %w", groupID, artifactID, unmarshalErr)
	}

	// deps.dev lists versions oldest first
	listed := decoded.Versions
	if limit > 0 && len(listed) > limit {
		listed = listed[len(listed)-limit:]
	}

	result := make([]entities.ArtifactVersion, 0, len(listed))
	for _, v := range listed {
		g, a, found := strings.Cut(v.VersionKey.Name, ":")
		if !found || v.VersionKey.Version == "" {
			continue
		}
		result = append(result, entities.ArtifactVersion{GroupID: g, ArtifactID: a, Version: v.VersionKey.Version})
	}
	return result, nil
}
