package repositories

import (
	"context"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

// ProjectModel is a parsed project descriptor. It exposes the dependency
// lists the inspection reads and resolves property references.
type ProjectModel interface {
	// Path returns the file path the model was read from.
	Path() string

	// Content returns the bytes the model was parsed from.
	Content() []byte

	// ProjectName returns <name>, falling back to <artifactId> and then
	// the file name.
	ProjectName() string

	// Dependencies returns the entries under <project><dependencies>.
	Dependencies() []entities.DependencyEntry

	// ManagedDependencies returns the entries under
	// <project><dependencyManagement><dependencies>.
	ManagedDependencies() []entities.DependencyEntry

	// LookupProperty resolves a property name to its value and definition.
	LookupProperty(name string) (entities.PropertyDefinition, bool)
}

// ProjectRepository loads project descriptors.
type ProjectRepository interface {
	Load(ctx context.Context, path string) (ProjectModel, error)
	Parse(path string, content []byte) (ProjectModel, error)
}
