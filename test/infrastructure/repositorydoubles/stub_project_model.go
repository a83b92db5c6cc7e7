//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// StubProjectModel implements repositories.ProjectModel with fixed data.
type StubProjectModel struct {
	FilePath   string
	Bytes      []byte
	Name       string
	Direct     []entities.DependencyEntry
	Managed    []entities.DependencyEntry
	Properties map[string]entities.PropertyDefinition

	// spy: names passed to LookupProperty
	LookedUp []string
}

var _ repositories.ProjectModel = (*StubProjectModel)(nil)

func (m *StubProjectModel) Path() string {
	if m.FilePath == "" {
		return "pom.xml"
	}
	return m.FilePath
}

func (m *StubProjectModel) Content() []byte { return m.Bytes }

func (m *StubProjectModel) ProjectName() string {
	if m.Name == "" {
		return "stub-project"
	}
	return m.Name
}

func (m *StubProjectModel) Dependencies() []entities.DependencyEntry { return m.Direct }

func (m *StubProjectModel) ManagedDependencies() []entities.DependencyEntry { return m.Managed }

func (m *StubProjectModel) LookupProperty(name string) (entities.PropertyDefinition, bool) {
	m.LookedUp = append(m.LookedUp, name)
	definition, ok := m.Properties[name]
	return definition, ok
}
