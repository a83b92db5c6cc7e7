//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/git"
)

// initRepository creates a repository with pom.xml committed on master.
func initRepository(t *testing.T) (string, *gogit.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte("<project><version>1</version></project>"), 0o600))
	workTree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = workTree.Add("pom.xml")
	require.NoError(t, err)
	_, err = workTree.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir, repo
}

func TestVersionControlRepositoryCommit(t *testing.T) {
	t.Parallel()

	t.Run("should commit the files on a new branch keeping the changes", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepository(t)
		pomPath := filepath.Join(dir, "pom.xml")
		require.NoError(t, os.WriteFile(pomPath, []byte("<project><version>2</version></project>"), 0o600))
		input := repositories.CommitInput{
			Dir:         dir,
			Files:       []string{pomPath},
			Branch:      "chore/upgrade-maven-dependencies",
			Message:     "chore(deps): upgraded Maven dependencies",
			AuthorName:  "mvnupdate",
			AuthorEmail: "mvnupdate@example.com",
		}

		// when
		hash, err := gitRepo.NewVersionControlRepository().Commit(context.Background(), input)

		// then
		require.NoError(t, err)
		head, headErr := repo.Head()
		require.NoError(t, headErr)
		assert.Equal(t, plumbing.NewBranchReferenceName("chore/upgrade-maven-dependencies"), head.Name())
		assert.Equal(t, hash, head.Hash().String())

		commit, commitErr := repo.CommitObject(head.Hash())
		require.NoError(t, commitErr)
		assert.Equal(t, "chore(deps): upgraded Maven dependencies", commit.Message)
		assert.Equal(t, "mvnupdate", commit.Author.Name)
		file, fileErr := commit.File("pom.xml")
		require.NoError(t, fileErr)
		contents, contentsErr := file.Contents()
		require.NoError(t, contentsErr)
		assert.Equal(t, "<project><version>2</version></project>", contents)
	})

	t.Run("should commit on the current branch when no branch is given", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepository(t)
		before, err := repo.Head()
		require.NoError(t, err)
		pomPath := filepath.Join(dir, "pom.xml")
		require.NoError(t, os.WriteFile(pomPath, []byte("<project><version>3</version></project>"), 0o600))

		// when
		hash, commitErr := gitRepo.NewVersionControlRepository().Commit(context.Background(), repositories.CommitInput{
			Dir:         dir,
			Files:       []string{pomPath},
			Message:     "update",
			AuthorName:  "mvnupdate",
			AuthorEmail: "mvnupdate@example.com",
		})

		// then
		require.NoError(t, commitErr)
		head, headErr := repo.Head()
		require.NoError(t, headErr)
		assert.Equal(t, before.Name(), head.Name())
		assert.Equal(t, hash, head.Hash().String())
	})

	t.Run("should fail when there is nothing to commit", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepository(t)

		// when
		_, err := gitRepo.NewVersionControlRepository().Commit(context.Background(), repositories.CommitInput{Dir: dir})

		// then
		require.Error(t, err)
	})

	t.Run("should fail outside a git repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		pomPath := filepath.Join(dir, "pom.xml")
		require.NoError(t, os.WriteFile(pomPath, []byte("<project/>"), 0o600))

		// when
		_, err := gitRepo.NewVersionControlRepository().Commit(context.Background(), repositories.CommitInput{
			Dir:   dir,
			Files: []string{pomPath},
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open git repository")
	})
}
