package repositories

import "github.com/rios0rios0/mvnupdate/internal/domain/entities"

// DiagnosticSink receives diagnostics as they are produced.
type DiagnosticSink interface {
	Report(diagnostic entities.Diagnostic)
}
