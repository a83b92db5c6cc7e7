package controllers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

// loadSettings reads --config, or the first config file found in the
// default locations, falling back to the built-in defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			settings := entities.DefaultSettings()
			return settings, settings.Validate()
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// pathsOrCurrentDir returns the positional arguments, or "." when none
// were given.
func pathsOrCurrentDir(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// interruptibleContext is cancelled on SIGINT or SIGTERM.
func interruptibleContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
