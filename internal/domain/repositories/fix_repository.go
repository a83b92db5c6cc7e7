package repositories

import "github.com/rios0rios0/mvnupdate/internal/domain/entities"

// FixRepository applies planned fixes to descriptor content.
type FixRepository interface {
	// Apply returns the rewritten content and true, or the content unchanged
	// and false when the target no longer matches what the fix expects.
	Apply(content []byte, fix entities.FixAction) ([]byte, bool)
}
