package services

import (
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

const propertyMarker = "${"

var (
	// ciPlaceholderPattern matches the CI-friendly version placeholders
	// supported since Maven 3.5, filled in by the build rather than the pom.
	ciPlaceholderPattern = regexp.MustCompile(`\$\{(revision|sha1|changelist)}`)
	propertyRefPattern   = regexp.MustCompile(`\$\{([^}]+)}`)
)

// PropertyLookup resolves a property name to its value and definition site.
type PropertyLookup func(name string) (entities.PropertyDefinition, bool)

// VersionResolver turns a declared version text into a concrete version.
type VersionResolver struct {
	stripCIPlaceholders bool
}

// NewVersionResolver creates a resolver. stripCIPlaceholders should be true
// when the build tool is Maven 3.5 or newer.
func NewVersionResolver(stripCIPlaceholders bool) *VersionResolver {
	return &VersionResolver{stripCIPlaceholders: stripCIPlaceholders}
}

// Resolve returns the resolved version of a declaration, or false when it
// cannot be resolved and the declaration must be dropped.
func (it *VersionResolver) Resolve(
	declaration entities.DependencyDeclaration,
	lookup PropertyLookup,
) (entities.ResolvedVersion, bool) {
	raw := declaration.VersionText
	valueToCheck := raw
	if it.stripCIPlaceholders {
		valueToCheck = ciPlaceholderPattern.ReplaceAllString(raw, "")
	}

	if !strings.Contains(valueToCheck, propertyMarker) {
		if valueToCheck != raw {
			logger.Debugf("[inspect] %s: version %q is set by the CI build, skipping", declaration.Coordinate(), raw)
			return entities.ResolvedVersion{}, false
		}
		return entities.ResolvedVersion{
			Raw:      raw,
			Resolved: strings.TrimSpace(raw),
			Site:     declaration.Version,
		}, true
	}

	name := firstPropertyName(valueToCheck)
	definition, found := entities.PropertyDefinition{}, false
	if name != "" && lookup != nil {
		definition, found = lookup(name)
	}

	resolved := strings.TrimSpace(declaration.ResolvedVersionText)
	if resolved == "" || resolved == raw || strings.Contains(resolved, propertyMarker) {
		if !found {
			logger.Debugf("[inspect] %s: property %q is not defined, skipping", declaration.Coordinate(), name)
			return entities.ResolvedVersion{}, false
		}
		resolved = strings.TrimSpace(definition.Value)
	}

	if resolved == "" || strings.Contains(resolved, propertyMarker) {
		logger.Debugf("[inspect] %s: version %q does not resolve to a value, skipping", declaration.Coordinate(), raw)
		return entities.ResolvedVersion{}, false
	}

	result := entities.ResolvedVersion{
		Raw:                 raw,
		Resolved:            resolved,
		IsPropertyReference: true,
		PropertyName:        name,
		Site:                declaration.Version,
	}
	// values inherited from a parent or the environment have no element to rewrite
	if found {
		result.Definition = definition.Element
	}
	return result, true
}

// firstPropertyName returns the name inside the first ${...} reference.
func firstPropertyName(text string) string {
	match := propertyRefPattern.FindStringSubmatch(text)
	if len(match) < 2 { //nolint:mnd // whole match + name
		return ""
	}
	return strings.TrimSpace(match[1])
}
