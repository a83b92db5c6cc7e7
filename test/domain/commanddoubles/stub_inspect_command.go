//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvnupdate/internal/domain/commands"
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// StubInspectCommand is a stub implementation of commands.Inspect.
type StubInspectCommand struct {
	// --- Execute ---
	ExecuteCallCount int
	ExecuteResult    *commands.InspectResult
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.InspectOptions

	// --- InspectContent ---
	// Diagnostics are reported to the sink on every InspectContent call.
	Diagnostics []entities.Diagnostic
	ContentErr  error
	LastPath    string
	LastContent []byte
}

var _ commands.Inspect = (*StubInspectCommand)(nil)

func (s *StubInspectCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.InspectOptions,
) (*commands.InspectResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	result := s.ExecuteResult
	if result == nil {
		result = &commands.InspectResult{}
	}
	return result, s.ExecuteErr
}

func (s *StubInspectCommand) InspectContent(
	_ context.Context,
	settings *entities.Settings,
	path string,
	content []byte,
	sink repositories.DiagnosticSink,
) (*commands.FileReport, error) {
	s.LastSettings = settings
	s.LastPath = path
	s.LastContent = content
	if s.ContentErr != nil {
		return nil, s.ContentErr
	}
	for _, diagnostic := range s.Diagnostics {
		sink.Report(diagnostic)
	}
	return &commands.FileReport{Path: path, Content: content}, nil
}
