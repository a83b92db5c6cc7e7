package search

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

type versioning struct {
	Latest   string   `xml:"latest"`
	Release  string   `xml:"release"`
	Versions []string `xml:"versions>version"`
}

type metadata struct {
	GroupID    string     `xml:"groupId"`
	ArtifactID string     `xml:"artifactId"`
	Versioning versioning `xml:"versioning"`
}

// MetadataSearchRepository reads maven-metadata.xml from a Maven repository
// layout (Maven Central, Nexus, Artifactory).
type MetadataSearchRepository struct {
	baseURL string
	client  *http.Client
}

// NewMetadataSearchRepository creates a search repository backed by
// settings.RepositoryURL.
func NewMetadataSearchRepository(settings entities.SearchSettings) repositories.SearchRepository {
	return &MetadataSearchRepository{
		baseURL: trimBaseURL(settings.RepositoryURL),
		client:  &http.Client{Timeout: settings.Timeout},
	}
}

func (r *MetadataSearchRepository) Name() string { return entities.SearchProviderMetadata }

// Search returns the newest limit versions listed in the artifact metadata.
func (r *MetadataSearchRepository) Search(
	ctx context.Context,
	pattern string,
	limit int,
) ([]entities.ArtifactVersion, error) {
	groupID, artifactID, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/%s/maven-metadata.xml",
		r.baseURL, strings.ReplaceAll(groupID, ".", "/"), artifactID)
	body, err := get(ctx, r.client, url, "application/xml")
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var meta metadata
	if unmarshalErr := xml.Unmarshal(body, &meta); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to decode metadata for %s:%s: %w", groupID, artifactID, unmarshalErr)
	}
	if meta.GroupID != "" {
		groupID = meta.GroupID
	}
	if meta.ArtifactID != "" {
		artifactID = meta.ArtifactID
	}

	// versions are listed oldest first
	listed := meta.Versioning.Versions
	if limit > 0 && len(listed) > limit {
		listed = listed[len(listed)-limit:]
	}

	result := make([]entities.ArtifactVersion, 0, len(listed))
	for _, version := range listed {
		version = strings.TrimSpace(version)
		if version == "" {
			continue
		}
		result = append(result, entities.ArtifactVersion{GroupID: groupID, ArtifactID: artifactID, Version: version})
	}
	return result, nil
}
