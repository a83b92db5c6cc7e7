package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

const (
	changelogFileName = "CHANGELOG.md"
	commitTitle       = "chore(deps): upgraded Maven dependencies"
)

// Fix is the interface for the fix command.
type Fix interface {
	Execute(ctx context.Context, settings *entities.Settings, opts FixOptions) (*FixResult, error)
	ApplyFixes(content []byte, fixes []entities.FixAction) ([]byte, int)
}

// FixOptions holds runtime options for the fix command.
type FixOptions struct {
	Paths  []string
	DryRun bool // report what would change without writing
	Commit bool // commit the rewritten files on the configured branch
	Sink   repositories.DiagnosticSink
}

// FixResult summarizes a fix run.
type FixResult struct {
	Inspection *InspectResult
	Applied    int
	Stale      int // fixes whose target changed since inspection
	Unfixable  int // findings without a safe rewrite
	Files      []string
	Commit     string
}

// FixCommand runs an inspection pass and accepts every offered fix.
type FixCommand struct {
	inspect        Inspect
	fixer          repositories.FixRepository
	versionControl repositories.VersionControlRepository
}

// NewFixCommand creates a new FixCommand.
func NewFixCommand(
	inspect Inspect,
	fixer repositories.FixRepository,
	versionControl repositories.VersionControlRepository,
) *FixCommand {
	return &FixCommand{
		inspect:        inspect,
		fixer:          fixer,
		versionControl: versionControl,
	}
}

// Execute inspects opts.Paths and rewrites each file with its fixes.
// Findings sharing a property definition are fixed once.
func (it *FixCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts FixOptions,
) (*FixResult, error) {
	inspection, err := it.inspect.Execute(ctx, settings, InspectOptions{Paths: opts.Paths, Sink: opts.Sink})
	result := &FixResult{Inspection: inspection}
	if err != nil {
		return result, err
	}

	var changed []FileReport
	for _, report := range inspection.Files {
		if report.Err != nil || len(report.Findings) == 0 {
			continue
		}

		fixes := uniqueFixes(report.Findings)
		result.Unfixable += countUnfixable(report.Findings)

		if opts.DryRun {
			for _, finding := range report.Findings {
				if finding.Fix.Kind != entities.FixNone {
					logger.Infof("[fix] would %s in %s (%s)",
						strings.ToLower(finding.Fix.FamilyName()), report.Path, finding.Declaration.Coordinate())
				}
			}
			result.Applied += len(fixes)
			continue
		}

		content, applied := it.ApplyFixes(report.Content, fixes)
		result.Applied += applied
		result.Stale += len(fixes) - applied
		if applied == 0 {
			continue
		}

		if writeErr := writePreservingMode(report.Path, content); writeErr != nil {
			return result, writeErr
		}
		logger.Infof("[fix] %s: %d fix(es) applied", report.Path, applied)
		result.Files = append(result.Files, report.Path)
		changed = append(changed, report)
	}

	if opts.DryRun || !opts.Commit || len(changed) == 0 {
		logFixSummary(result, opts.DryRun)
		return result, nil
	}

	hash, err := it.commit(ctx, settings, changed)
	if err != nil {
		return result, err
	}
	result.Commit = hash
	logFixSummary(result, false)
	return result, nil
}

// ApplyFixes applies fixes in order and returns the new content with the
// number of fixes that took effect. A fix whose target went stale is
// skipped.
func (it *FixCommand) ApplyFixes(content []byte, fixes []entities.FixAction) ([]byte, int) {
	applied := 0
	for _, fix := range fixes {
		next, ok := it.fixer.Apply(content, fix)
		if !ok {
			continue
		}
		content = next
		applied++
	}
	return content, applied
}

func (it *FixCommand) commit(
	ctx context.Context,
	settings *entities.Settings,
	changed []FileReport,
) (string, error) {
	files := make([]string, 0, len(changed)+1)
	var findings []entities.UpdateFinding
	for _, report := range changed {
		abs, err := filepath.Abs(report.Path)
		if err != nil {
			return "", fmt.Errorf("invalid path %s: %w", report.Path, err)
		}
		files = append(files, abs)
		findings = append(findings, report.Findings...)

		changelog, updated, err := updateChangelog(filepath.Dir(abs), report.Findings)
		if err != nil {
			return "", err
		}
		if updated {
			files = append(files, changelog)
		}
	}

	return it.versionControl.Commit(ctx, repositories.CommitInput{
		Dir:         filepath.Dir(files[0]),
		Branch:      settings.Git.Branch,
		Message:     commitMessage(findings),
		Files:       files,
		AuthorName:  settings.Git.AuthorName,
		AuthorEmail: settings.Git.AuthorEmail,
	})
}

// uniqueFixes drops FixNone and keeps one fix per target element.
func uniqueFixes(findings []entities.UpdateFinding) []entities.FixAction {
	seen := make(map[string]bool)
	var fixes []entities.FixAction
	for _, finding := range findings {
		fix := finding.Fix
		if fix.Kind == entities.FixNone || seen[fix.Target.Path] {
			continue
		}
		seen[fix.Target.Path] = true
		fixes = append(fixes, fix)
	}
	return fixes
}

func countUnfixable(findings []entities.UpdateFinding) int {
	count := 0
	for _, finding := range findings {
		if finding.Fix.Kind == entities.FixNone {
			logger.Warnf("[fix] %s: no safe rewrite to %s, update it by hand",
				finding.Declaration.Coordinate(), finding.LatestVersion)
			count++
		}
	}
	return count
}

func commitMessage(findings []entities.UpdateFinding) string {
	var builder strings.Builder
	builder.WriteString(commitTitle)
	builder.WriteString("\n\n")
	for _, entry := range entities.ChangelogEntries(findings) {
		builder.WriteString(entry)
		builder.WriteString("\n")
	}
	return builder.String()
}

// updateChangelog adds entries to the CHANGELOG.md next to the descriptor
// when there is one with an Unreleased section.
func updateChangelog(dir string, findings []entities.UpdateFinding) (string, bool, error) {
	path := filepath.Join(dir, changelogFileName)
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated := entities.InsertChangelogEntries(string(content), entities.ChangelogEntries(findings))
	if updated == string(content) {
		return "", false, nil
	}
	if writeErr := writePreservingMode(path, []byte(updated)); writeErr != nil {
		return "", false, writeErr
	}
	return path, true, nil
}

func writePreservingMode(path string, content []byte) error {
	mode := os.FileMode(0o644) //nolint:mnd // default file mode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func logFixSummary(result *FixResult, dryRun bool) {
	verb := "applied"
	if dryRun {
		verb = "would be applied"
	}
	logger.Infof(
		"Fix complete: %d fixes %s, %d stale, %d without a safe rewrite, %d files changed",
		result.Applied, verb, result.Stale, result.Unfixable, len(result.Files),
	)
}
