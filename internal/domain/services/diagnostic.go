package services

import (
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// ProjectLink renders the clickable project link hosts navigate with.
func ProjectLink(path string, offset int, projectName string) string {
	return fmt.Sprintf("<a href ='#navigation/%s:%d'>%s</a>", path, offset, projectName)
}

// NewDiagnostic builds the warning reported for a finding. The anchor is
// the <version> element of the declaration, even when the fix targets a
// property definition elsewhere.
func NewDiagnostic(model repositories.ProjectModel, finding entities.UpdateFinding) entities.Diagnostic {
	declaration := finding.Declaration
	link := ProjectLink(absolutePath(model.Path()), declaration.Element.Offset, model.ProjectName())

	diagnostic := entities.Diagnostic{
		File:     model.Path(),
		Anchor:   declaration.Version,
		Severity: entities.SeverityWarning,
		Message: fmt.Sprintf(
			"%s: dependency %s:%s version %s is outdated, latest version is %s",
			link, declaration.GroupID, declaration.ArtifactID, finding.CurrentVersion, finding.LatestVersion,
		),
		Link:           link,
		ProjectName:    model.ProjectName(),
		GroupID:        declaration.GroupID,
		ArtifactID:     declaration.ArtifactID,
		CurrentVersion: finding.CurrentVersion,
		LatestVersion:  finding.LatestVersion,
	}
	if finding.Fix.Kind != entities.FixNone {
		fix := finding.Fix
		diagnostic.Fix = &fix
		diagnostic.FixName = fix.FamilyName()
	}
	return diagnostic
}

// absolutePath makes the link independent of the working directory.
func absolutePath(path string) string {
	if path == "" {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
