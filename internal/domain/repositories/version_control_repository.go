package repositories

import "context"

// CommitInput describes the files to commit after fixes were applied.
type CommitInput struct {
	Dir         string // any directory inside the working tree
	Branch      string
	Message     string
	Files       []string // absolute paths
	AuthorName  string
	AuthorEmail string
}

// VersionControlRepository records rewritten descriptors in version control.
type VersionControlRepository interface {
	Commit(ctx context.Context, input CommitInput) (string, error)
}
