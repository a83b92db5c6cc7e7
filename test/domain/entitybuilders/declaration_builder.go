//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DeclarationBuilder helps create test dependency declarations with a fluent interface.
type DeclarationBuilder struct {
	*testkit.BaseBuilder
	groupID     string
	artifactID  string
	versionText string
	resolved    string
	section     string
	index       int
}

// NewDeclarationBuilder creates a new declaration builder with sensible defaults.
func NewDeclarationBuilder() *DeclarationBuilder {
	return &DeclarationBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     "org.example",
		artifactID:  "library",
		versionText: "1.0",
		section:     entities.SectionDependencies,
		index:       1,
	}
}

// WithCoordinates sets the groupId and artifactId.
func (b *DeclarationBuilder) WithCoordinates(groupID, artifactID string) *DeclarationBuilder {
	b.groupID = groupID
	b.artifactID = artifactID
	return b
}

// WithVersion sets the raw version text.
func (b *DeclarationBuilder) WithVersion(version string) *DeclarationBuilder {
	b.versionText = version
	return b
}

// WithResolvedVersion sets the text after interpolation. It defaults to
// the raw version text.
func (b *DeclarationBuilder) WithResolvedVersion(version string) *DeclarationBuilder {
	b.resolved = version
	return b
}

// InManagement places the declaration under <dependencyManagement>.
func (b *DeclarationBuilder) InManagement() *DeclarationBuilder {
	b.section = entities.SectionDependencyManagement
	return b
}

// WithIndex sets the 1-based position of the <dependency> element.
func (b *DeclarationBuilder) WithIndex(index int) *DeclarationBuilder {
	b.index = index
	return b
}

// Build creates the declaration (satisfies testkit.Builder interface).
func (b *DeclarationBuilder) Build() interface{} {
	return b.BuildDeclaration()
}

// BuildDeclaration creates the declaration with a concrete return type.
func (b *DeclarationBuilder) BuildDeclaration() entities.DependencyDeclaration {
	return b.BuildEntry().Declaration(b.section)
}

// BuildEntry creates the matching model entry.
func (b *DeclarationBuilder) BuildEntry() EntryWithSection {
	list := "project[1]/dependencies[1]"
	if b.section == entities.SectionDependencyManagement {
		list = "project[1]/dependencyManagement[1]/dependencies[1]"
	}
	dependencyPath := fmt.Sprintf("%s/dependency[%d]", list, b.index)

	resolved := b.resolved
	if resolved == "" {
		resolved = b.versionText
	}
	return EntryWithSection{DependencyEntry: entities.DependencyEntry{
		GroupID:         b.groupID,
		ArtifactID:      b.artifactID,
		RawVersion:      b.versionText,
		ResolvedVersion: resolved,
		Element:         entities.ElementHandle{Path: dependencyPath, Offset: 100 * b.index},
		VersionElement: entities.ElementHandle{
			Path: dependencyPath + "/version[1]",
			Line: 10 * b.index,
			Text: b.versionText,
		},
	}}
}

// EntryWithSection is a model entry that can also be viewed as the
// declaration the collector would produce from it.
type EntryWithSection struct {
	entities.DependencyEntry
}

// Declaration returns the declaration collected from the entry.
func (e EntryWithSection) Declaration(section string) entities.DependencyDeclaration {
	return entities.DependencyDeclaration{
		GroupID:             e.GroupID,
		ArtifactID:          e.ArtifactID,
		VersionText:         e.RawVersion,
		ResolvedVersionText: e.ResolvedVersion,
		Section:             section,
		Element:             e.Element,
		Version:             e.VersionElement,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DeclarationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "org.example"
	b.artifactID = "library"
	b.versionText = "1.0"
	b.resolved = ""
	b.section = entities.SectionDependencies
	b.index = 1
	return b
}

// Clone creates a deep copy of the DeclarationBuilder.
func (b *DeclarationBuilder) Clone() testkit.Builder {
	return &DeclarationBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:     b.groupID,
		artifactID:  b.artifactID,
		versionText: b.versionText,
		resolved:    b.resolved,
		section:     b.section,
		index:       b.index,
	}
}
