package services

import (
	"strings"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// CollectDependencies returns the well-formed declarations of the direct
// and the managed dependency lists. Entries with a blank groupId,
// artifactId or version are skipped. Duplicate groupId:artifactId:version
// triples collapse into one declaration that keeps the position of the
// first occurrence and the location of the last one.
//
// Plugin dependencies and dependencies inherited from a parent are not
// collected.
func CollectDependencies(model repositories.ProjectModel) []entities.DependencyDeclaration {
	var declarations []entities.DependencyDeclaration
	index := make(map[string]int)

	add := func(section string, entries []entities.DependencyEntry) {
		for _, entry := range entries {
			if isAnyBlank(entry.GroupID, entry.ArtifactID, entry.RawVersion) {
				continue
			}
			declaration := entities.DependencyDeclaration{
				GroupID:             strings.TrimSpace(entry.GroupID),
				ArtifactID:          strings.TrimSpace(entry.ArtifactID),
				VersionText:         strings.TrimSpace(entry.RawVersion),
				ResolvedVersionText: strings.TrimSpace(entry.ResolvedVersion),
				Section:             section,
				Element:             entry.Element,
				Version:             entry.VersionElement,
			}
			if i, seen := index[declaration.Key()]; seen {
				declarations[i] = declaration
				continue
			}
			index[declaration.Key()] = len(declarations)
			declarations = append(declarations, declaration)
		}
	}

	add(entities.SectionDependencies, model.Dependencies())
	add(entities.SectionDependencyManagement, model.ManagedDependencies())
	return declarations
}

func isAnyBlank(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return true
		}
	}
	return false
}
