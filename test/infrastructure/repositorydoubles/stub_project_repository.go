//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// StubProjectRepository implements repositories.ProjectRepository from a
// map of models keyed by path.
type StubProjectRepository struct {
	Models   map[string]repositories.ProjectModel
	LoadErrs map[string]error
	ParseErr error

	// spy
	Loaded []string
	Parsed []string
}

var _ repositories.ProjectRepository = (*StubProjectRepository)(nil)

func (r *StubProjectRepository) Load(_ context.Context, path string) (repositories.ProjectModel, error) {
	r.Loaded = append(r.Loaded, path)
	if err, ok := r.LoadErrs[path]; ok {
		return nil, err
	}
	model, ok := r.Models[path]
	if !ok {
		return nil, fmt.Errorf("failed to read %q: no such file", path)
	}
	return model, nil
}

func (r *StubProjectRepository) Parse(path string, content []byte) (repositories.ProjectModel, error) {
	r.Parsed = append(r.Parsed, path)
	if r.ParseErr != nil {
		return nil, r.ParseErr
	}
	if model, ok := r.Models[path]; ok {
		return model, nil
	}
	return &StubProjectModel{FilePath: path, Bytes: content}, nil
}
