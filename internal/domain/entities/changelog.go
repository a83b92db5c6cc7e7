package entities

import (
	"fmt"
	"strings"
)

const (
	unreleasedHeading = "## [Unreleased]"
	changedSubheading = "### Changed"
	releasePrefix     = "## ["
	bulletPrefix      = "- "
)

// ChangelogEntries renders one Keep-a-Changelog bullet per upgraded
// dependency. Findings sharing a property are listed individually.
func ChangelogEntries(findings []UpdateFinding) []string {
	entries := make([]string, 0, len(findings))
	for _, finding := range findings {
		if finding.Fix.Kind == FixNone {
			continue
		}
		entries = append(entries, fmt.Sprintf(
			"%schanged the `%s` dependency from `%s` to `%s`",
			bulletPrefix, finding.Declaration.Coordinate(), finding.CurrentVersion, finding.LatestVersion,
		))
	}
	return entries
}

// InsertChangelogEntries adds the entries under "## [Unreleased]" /
// "### Changed". Content without an Unreleased section is returned as is.
// An existing Changed subsection gets the entries after its last bullet;
// otherwise the subsection is created right below the Unreleased heading.
func InsertChangelogEntries(content string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	section, found := locateUnreleased(lines)
	if !found {
		return content
	}

	var at int
	var block []string
	if section.changed >= 0 {
		at = section.lastBullet(lines) + 1
		block = entries
	} else {
		at = section.heading + 1
		block = append([]string{"", changedSubheading, ""}, entries...)
	}

	result := make([]string, 0, len(lines)+len(block))
	result = append(result, lines[:at]...)
	result = append(result, block...)
	result = append(result, lines[at:]...)
	return strings.Join(result, "\n")
}

// unreleasedSection holds line indexes inside the changelog; changed is -1
// when the section has no "### Changed" subsection.
type unreleasedSection struct {
	heading int
	end     int
	changed int
}

func locateUnreleased(lines []string) (unreleasedSection, bool) {
	section := unreleasedSection{heading: -1, end: len(lines), changed: -1}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case section.heading < 0 && trimmed == unreleasedHeading:
			section.heading = i
		case section.heading >= 0 && strings.HasPrefix(trimmed, releasePrefix):
			section.end = i
			return section, true
		case section.heading >= 0 && section.changed < 0 && trimmed == changedSubheading:
			section.changed = i
		}
	}
	return section, section.heading >= 0
}

func (s unreleasedSection) lastBullet(lines []string) int {
	last := s.changed
	for i := s.changed + 1; i < s.end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, bulletPrefix) {
			break
		}
		last = i
	}
	return last
}
