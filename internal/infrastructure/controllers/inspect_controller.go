package controllers

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvnupdate/internal/domain/commands"
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	infraRepos "github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories"
)

// InspectController handles the "inspect" subcommand and the root command
// with path arguments.
type InspectController struct {
	command commands.Inspect
	sinks   *infraRepos.SinkRegistry
}

// NewInspectController creates a new InspectController.
func NewInspectController(command commands.Inspect, sinks *infraRepos.SinkRegistry) *InspectController {
	return &InspectController{command: command, sinks: sinks}
}

// GetBind returns the Cobra command metadata for the inspect controller.
func (it *InspectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "inspect [pom.xml|dir...]",
		Short: "Report outdated dependency versions",
		Long: `Inspect Maven descriptors and report every dependency, direct or managed,
whose declared version is older than the newest published one.

Versions defined through properties are resolved, and each report says
whether the version element or the property definition would be rewritten.`,
	}
}

// Execute runs one inspection pass over the given paths.
func (it *InspectController) Execute(cmd *cobra.Command, args []string) {
	ctx, cancel := interruptibleContext()
	defer cancel()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	output, _ := cmd.Flags().GetString("output")
	sink, err := it.sinks.Get(output, os.Stdout)
	if err != nil {
		logger.Errorf("Inspect failed: %v", err)
		return
	}

	if _, runErr := it.command.Execute(ctx, settings, commands.InspectOptions{
		Paths: pathsOrCurrentDir(args),
		Sink:  sink,
	}); runErr != nil {
		logger.Errorf("Inspect failed: %v", runErr)
	}
}
