//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/mvnupdate/internal/domain/commands"
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

// StubFixCommand is a stub implementation of commands.Fix.
type StubFixCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.FixOptions

	// ApplyFixes returns Rewritten (or the input when empty) and Applied.
	Rewritten  []byte
	Applied    int
	LastFixes  []entities.FixAction
	LastSource []byte
}

var _ commands.Fix = (*StubFixCommand)(nil)

func (s *StubFixCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.FixOptions,
) (*commands.FixResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return &commands.FixResult{}, s.ExecuteErr
}

func (s *StubFixCommand) ApplyFixes(content []byte, fixes []entities.FixAction) ([]byte, int) {
	s.LastSource = content
	s.LastFixes = fixes
	if s.Rewritten == nil {
		return content, s.Applied
	}
	return s.Rewritten, s.Applied
}
