package repositories

import "context"

// BuildToolRepository probes the configured build tool.
type BuildToolRepository interface {
	// IsMaven35OrNewer reports whether Maven is at least 3.5. Probe failures
	// report true.
	IsMaven35OrNewer(ctx context.Context) bool
}
