package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// VersionControlRepository commits rewritten descriptors with go-git.
type VersionControlRepository struct {
	now func() time.Time
}

// NewVersionControlRepository creates a go-git backed repository.
func NewVersionControlRepository() repositories.VersionControlRepository {
	return &VersionControlRepository{now: time.Now}
}

// Commit switches the enclosing working tree to input.Branch (creating it
// from HEAD when missing) while keeping local changes, stages input.Files
// and commits them. It returns the new commit hash.
func (r *VersionControlRepository) Commit(ctx context.Context, input repositories.CommitInput) (string, error) {
	if len(input.Files) == 0 {
		return "", errors.New("nothing to commit")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := gogit.PlainOpenWithOptions(input.Dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %q: %w", input.Dir, err)
	}
	workTree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	if input.Branch != "" {
		if checkoutErr := checkoutBranch(repo, workTree, input.Branch); checkoutErr != nil {
			return "", checkoutErr
		}
	}

	root, err := filepath.EvalSymlinks(workTree.Filesystem.Root())
	if err != nil {
		return "", fmt.Errorf("failed to resolve worktree root: %w", err)
	}
	for _, file := range input.Files {
		relPath, relErr := relativeTo(root, file)
		if relErr != nil {
			return "", relErr
		}
		if _, addErr := workTree.Add(relPath); addErr != nil {
			return "", fmt.Errorf("failed to add file %s: %w", relPath, addErr)
		}
	}

	hash, err := workTree.Commit(input.Message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  input.AuthorName,
			Email: input.AuthorEmail,
			When:  r.now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit changes: %w", err)
	}

	logger.Infof("[git] committed %d file(s) on %s: %s", len(input.Files), input.Branch, hash.String())
	return hash.String(), nil
}

func checkoutBranch(repo *gogit.Repository, workTree *gogit.Worktree, branch string) error {
	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to read HEAD: %w", err)
	}

	branchRef := plumbing.NewBranchReferenceName(branch)
	if head.Name() == branchRef {
		return nil
	}

	_, err = repo.Reference(branchRef, true)
	create := errors.Is(err, plumbing.ErrReferenceNotFound)
	if err != nil && !create {
		return fmt.Errorf("failed to look up branch %s: %w", branch, err)
	}

	if checkoutErr := workTree.Checkout(&gogit.CheckoutOptions{
		Branch: branchRef,
		Create: create,
		Keep:   true,
	}); checkoutErr != nil {
		return fmt.Errorf("failed to check out branch %s: %w", branch, checkoutErr)
	}
	return nil
}

func relativeTo(root, file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", file, err)
	}
	if resolved, evalErr := filepath.EvalSymlinks(abs); evalErr == nil {
		abs = resolved
	}
	relPath, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path for %s: %w", file, err)
	}
	return filepath.ToSlash(relPath), nil
}
