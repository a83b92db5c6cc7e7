//go:build unit

package controllers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	infraRepos "github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories"
)

func sinkRegistry() *infraRepos.SinkRegistry {
	return infraRepos.NewDefaultSinkRegistry()
}

// cobraCommand builds a command carrying the root persistent flags, with
// --config pointing at a config file written to a temp dir.
func cobraCommand(t *testing.T, config string, flags ...string) *cobra.Command {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mvnupdate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().StringP("output", "o", "text", "")
	cmd.Flags().Bool("commit", false, "")
	require.NoError(t, cmd.Flags().Set("config", path))
	for i := 0; i+1 < len(flags); i += 2 {
		require.NoError(t, cmd.Flags().Set(flags[i], flags[i+1]))
	}
	return cmd
}
