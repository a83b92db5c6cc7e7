package services

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// Inspector runs one inspection pass over a project model:
// collect -> resolve -> find latest -> plan fix -> report.
type Inspector struct {
	resolver *VersionResolver
	checker  *UpdateChecker
	ignore   *IgnoreMatcher
}

// NewInspector wires the pass components together.
func NewInspector(resolver *VersionResolver, checker *UpdateChecker, ignore *IgnoreMatcher) *Inspector {
	if ignore == nil {
		ignore = NewIgnoreMatcher(nil)
	}
	return &Inspector{resolver: resolver, checker: checker, ignore: ignore}
}

// Inspect checks every collected declaration sequentially and reports one
// diagnostic per finding to sink, which may be nil. When ctx is cancelled
// the pass stops before the next declaration and nothing is reported for
// the one in flight.
func (it *Inspector) Inspect(
	ctx context.Context,
	model repositories.ProjectModel,
	sink repositories.DiagnosticSink,
) ([]entities.UpdateFinding, error) {
	declarations := CollectDependencies(model)
	logger.Debugf("[inspect] %s: %d dependencies collected", model.Path(), len(declarations))

	var findings []entities.UpdateFinding
	for _, declaration := range declarations {
		if err := ctx.Err(); err != nil {
			return findings, err
		}
		if it.ignore.Matches(declaration.GroupID, declaration.ArtifactID) {
			logger.Debugf("[inspect] %s is ignored", declaration.Coordinate())
			continue
		}

		finding, ok := it.check(ctx, model, declaration)
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return findings, err
		}

		if sink != nil {
			sink.Report(NewDiagnostic(model, finding))
		}
		findings = append(findings, finding)
	}
	return findings, nil
}

func (it *Inspector) check(
	ctx context.Context,
	model repositories.ProjectModel,
	declaration entities.DependencyDeclaration,
) (entities.UpdateFinding, bool) {
	resolved, ok := it.resolver.Resolve(declaration, model.LookupProperty)
	if !ok {
		return entities.UpdateFinding{}, false
	}

	latest, ok := it.checker.FindLatest(ctx, declaration.GroupID, declaration.ArtifactID, resolved.Resolved)
	if !ok {
		return entities.UpdateFinding{}, false
	}

	fix := PlanFix(resolved, latest)
	logger.Debugf("[inspect] %s: %s -> %s (%s)", declaration.Coordinate(), resolved.Resolved, latest, fix.Kind)
	return entities.UpdateFinding{
		Declaration:    declaration,
		CurrentVersion: resolved.Resolved,
		LatestVersion:  latest,
		Fix:            fix,
	}, true
}
