package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
	"github.com/rios0rios0/mvnupdate/internal/domain/services"
	infraRepos "github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories"
)

const descriptorFileName = "pom.xml"

// Inspect is the interface for the inspect command.
type Inspect interface {
	Execute(ctx context.Context, settings *entities.Settings, opts InspectOptions) (*InspectResult, error)
	InspectContent(
		ctx context.Context,
		settings *entities.Settings,
		path string,
		content []byte,
		sink repositories.DiagnosticSink,
	) (*FileReport, error)
}

// InspectOptions holds runtime options for one inspection pass.
type InspectOptions struct {
	Paths []string // pom.xml files, or directories containing one
	Sink  repositories.DiagnosticSink
}

// FileReport is the outcome of inspecting one descriptor.
type FileReport struct {
	Path     string
	Content  []byte
	Findings []entities.UpdateFinding
	Err      error
}

// InspectResult aggregates the file reports of a pass.
type InspectResult struct {
	Files  []FileReport
	Errors int
}

// Findings returns the number of findings across all files.
func (r *InspectResult) Findings() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Findings)
	}
	return total
}

// InspectCommand runs inspection passes:
// load descriptor -> collect -> resolve -> find latest -> plan fix -> report.
type InspectCommand struct {
	searchRegistry   *infraRepos.SearchRegistry
	buildToolFactory infraRepos.BuildToolFactory
	projects         repositories.ProjectRepository
}

// NewInspectCommand creates a new InspectCommand.
func NewInspectCommand(
	searchRegistry *infraRepos.SearchRegistry,
	buildToolFactory infraRepos.BuildToolFactory,
	projects repositories.ProjectRepository,
) *InspectCommand {
	return &InspectCommand{
		searchRegistry:   searchRegistry,
		buildToolFactory: buildToolFactory,
		projects:         projects,
	}
}

// Execute inspects every path. A file that cannot be read or parsed is
// counted as an error and the pass moves on; a cancelled context stops the
// pass and is returned together with what was inspected so far.
func (it *InspectCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts InspectOptions,
) (*InspectResult, error) {
	inspector, release, err := it.newInspector(ctx, settings)
	if err != nil {
		return nil, err
	}
	defer release()

	result := &InspectResult{}
	for _, path := range opts.Paths {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		report := it.inspectFile(ctx, inspector, descriptorPath(path), opts.Sink)
		result.Files = append(result.Files, report)
		if report.Err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			logger.Errorf("Failed to inspect %s: %v", report.Path, report.Err)
			result.Errors++
		}
	}

	logger.Infof(
		"Inspection complete: %d files inspected, %d outdated dependencies, %d errors",
		len(result.Files), result.Findings(), result.Errors,
	)
	return result, nil
}

// InspectContent inspects descriptor content that is not read from disk,
// e.g. an unsaved editor buffer. path is only used for naming and links.
func (it *InspectCommand) InspectContent(
	ctx context.Context,
	settings *entities.Settings,
	path string,
	content []byte,
	sink repositories.DiagnosticSink,
) (*FileReport, error) {
	model, err := it.projects.Parse(path, content)
	if err != nil {
		return nil, err
	}

	inspector, release, err := it.newInspector(ctx, settings)
	if err != nil {
		return nil, err
	}
	defer release()

	findings, err := inspector.Inspect(ctx, model, sink)
	return &FileReport{Path: path, Content: content, Findings: findings}, err
}

// newInspector wires one pass: the search repository (and its cache) and
// a single build tool probe shared by every file of the pass.
func (it *InspectCommand) newInspector(
	ctx context.Context,
	settings *entities.Settings,
) (*services.Inspector, func(), error) {
	searchRepository, release, err := it.searchRegistry.Open(ctx, settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize search provider: %w", err)
	}

	stripCIPlaceholders := it.buildToolFactory(settings.Maven).IsMaven35OrNewer(ctx)
	inspector := services.NewInspector(
		services.NewVersionResolver(stripCIPlaceholders),
		services.NewUpdateChecker(searchRepository, settings.Search.Limit),
		services.NewIgnoreMatcher(settings.Ignore),
	)
	logger.Debugf("[inspect] using search provider %q", searchRepository.Name())
	return inspector, release, nil
}

func (it *InspectCommand) inspectFile(
	ctx context.Context,
	inspector *services.Inspector,
	path string,
	sink repositories.DiagnosticSink,
) FileReport {
	model, err := it.projects.Load(ctx, path)
	if err != nil {
		return FileReport{Path: path, Err: err}
	}

	logger.Infof("Inspecting %s (%s)", model.ProjectName(), path)
	findings, err := inspector.Inspect(ctx, model, sink)
	return FileReport{Path: path, Content: model.Content(), Findings: findings, Err: err}
}

// descriptorPath maps a directory to the pom.xml inside it.
func descriptorPath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, descriptorFileName)
	}
	return path
}
