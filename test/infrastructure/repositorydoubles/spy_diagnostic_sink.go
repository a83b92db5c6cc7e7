//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// SpyDiagnosticSink records every reported diagnostic.
type SpyDiagnosticSink struct {
	Diagnostics []entities.Diagnostic

	// OnReport, when set, runs after each diagnostic is recorded.
	OnReport func(entities.Diagnostic)
}

var _ repositories.DiagnosticSink = (*SpyDiagnosticSink)(nil)

func (s *SpyDiagnosticSink) Report(diagnostic entities.Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, diagnostic)
	if s.OnReport != nil {
		s.OnReport(diagnostic)
	}
}
