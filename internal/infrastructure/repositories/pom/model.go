package pom

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

const maxInterpolationDepth = 10

var propertyRefPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Model is a parsed pom.xml. It implements repositories.ProjectModel.
type Model struct {
	path    string
	content []byte
	doc     *document
	project *element
}

func newModel(path string, content []byte, doc *document) *Model {
	return &Model{path: path, content: content, doc: doc, project: doc.root}
}

// Path returns the file the model was read from.
func (m *Model) Path() string { return m.path }

// Content returns the bytes the model was parsed from.
func (m *Model) Content() []byte { return m.content }

// ProjectName returns <name>, then <artifactId>, then the file name.
func (m *Model) ProjectName() string {
	for _, name := range []string{"name", "artifactId"} {
		if e := m.project.child(name); e != nil {
			if value := m.interpolate(e.trimmedText()); value != "" {
				return value
			}
		}
	}
	return filepath.Base(m.path)
}

// Dependencies returns the entries under <project><dependencies>.
func (m *Model) Dependencies() []entities.DependencyEntry {
	return m.entries(m.project.find("dependencies"))
}

// ManagedDependencies returns the entries under
// <project><dependencyManagement><dependencies>.
func (m *Model) ManagedDependencies() []entities.DependencyEntry {
	return m.entries(m.project.find("dependencyManagement", "dependencies"))
}

func (m *Model) entries(list *element) []entities.DependencyEntry {
	if list == nil {
		return nil
	}

	dependencies := list.childrenNamed("dependency")
	result := make([]entities.DependencyEntry, 0, len(dependencies))
	for _, dependency := range dependencies {
		entry := entities.DependencyEntry{
			GroupID:    m.interpolate(m.childText(dependency, "groupId")),
			ArtifactID: m.interpolate(m.childText(dependency, "artifactId")),
			Element:    dependency.handle(),
		}
		if version := dependency.child("version"); version != nil {
			entry.RawVersion = version.trimmedText()
			entry.ResolvedVersion = m.interpolate(entry.RawVersion)
			entry.VersionElement = version.handle()
		}
		result = append(result, entry)
	}
	return result
}

func (m *Model) childText(e *element, name string) string {
	if c := e.child(name); c != nil {
		return c.trimmedText()
	}
	return ""
}

// LookupProperty resolves user properties from <properties>, the
// project.* and parent.* model values, and env.* variables. Values inherited
// from the parent and values not backed by the pom carry no definition
// element.
func (m *Model) LookupProperty(name string) (entities.PropertyDefinition, bool) {
	name = strings.TrimSpace(name)
	source, ok := m.locate(name)
	if !ok {
		return entities.PropertyDefinition{}, false
	}
	if source.element == nil || source.inherited {
		return entities.PropertyDefinition{Name: name, Value: m.interpolate(source.raw())}, true
	}
	h := source.element.handle()
	return entities.PropertyDefinition{
		Name:    name,
		Value:   m.interpolate(source.raw()),
		Element: &h,
	}, true
}

// propertySource is where a property value comes from: an element of this
// pom or a plain value.
type propertySource struct {
	element   *element
	value     string
	inherited bool
}

func (s propertySource) raw() string {
	if s.element != nil {
		return s.element.trimmedText()
	}
	return s.value
}

func (m *Model) locate(name string) (propertySource, bool) {
	if name == "" {
		return propertySource{}, false
	}
	if e := m.project.find("properties", name); e != nil {
		return propertySource{element: e}, true
	}
	if env, ok := strings.CutPrefix(name, "env."); ok {
		value, set := os.LookupEnv(env)
		return propertySource{value: value}, set
	}

	field := name
	for _, prefix := range []string{"project.", "pom."} {
		if trimmed, ok := strings.CutPrefix(name, prefix); ok {
			field = trimmed
			break
		}
	}

	if parentField, ok := strings.CutPrefix(field, "parent."); ok {
		if e := m.project.find("parent", parentField); e != nil {
			return propertySource{element: e}, true
		}
		return propertySource{}, false
	}

	switch field {
	case "version", "groupId":
		if e := m.project.child(field); e != nil {
			return propertySource{element: e}, true
		}
		if e := m.project.find("parent", field); e != nil {
			return propertySource{element: e, inherited: true}, true
		}
	case "artifactId", "name", "packaging", "description", "url":
		if e := m.project.child(field); e != nil {
			return propertySource{element: e}, true
		}
	case "basedir":
		return propertySource{value: filepath.Dir(m.path)}, true
	}
	return propertySource{}, false
}

// interpolate replaces ${...} references it can resolve and leaves the
// others in place.
func (m *Model) interpolate(text string) string {
	for range maxInterpolationDepth {
		if !strings.Contains(text, "${") {
			return text
		}
		next := propertyRefPattern.ReplaceAllStringFunc(text, func(match string) string {
			name := propertyRefPattern.FindStringSubmatch(match)[1]
			source, ok := m.locate(name)
			if !ok {
				return match
			}
			return source.raw()
		})
		if next == text {
			return text
		}
		text = next
	}
	return text
}
