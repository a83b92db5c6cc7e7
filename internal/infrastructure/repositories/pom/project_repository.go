package pom

import (
	"context"
	"fmt"
	"os"

	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// ProjectRepository reads pom.xml files from disk.
type ProjectRepository struct{}

// NewProjectRepository creates a new pom project repository.
func NewProjectRepository() repositories.ProjectRepository {
	return &ProjectRepository{}
}

// Load reads and parses the descriptor at path.
func (r *ProjectRepository) Load(ctx context.Context, path string) (repositories.ProjectModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return r.Parse(path, content)
}

// Parse parses descriptor content; path is only used for naming and links.
func (r *ProjectRepository) Parse(path string, content []byte) (repositories.ProjectModel, error) {
	doc, err := parseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if doc.root.name != "project" {
		return nil, fmt.Errorf("failed to parse %q: root element is <%s>, expected <project>", path, doc.root.name)
	}
	return newModel(path, content, doc), nil
}
