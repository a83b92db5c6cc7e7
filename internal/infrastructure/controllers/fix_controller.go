package controllers

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvnupdate/internal/domain/commands"
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	infraRepos "github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories"
)

// FixController handles the "fix" subcommand.
type FixController struct {
	command commands.Fix
	sinks   *infraRepos.SinkRegistry
}

// NewFixController creates a new FixController.
func NewFixController(command commands.Fix, sinks *infraRepos.SinkRegistry) *FixController {
	return &FixController{command: command, sinks: sinks}
}

// GetBind returns the Cobra command metadata for the fix controller.
func (it *FixController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "fix [pom.xml|dir...]",
		Short: "Upgrade outdated dependency versions in place",
		Long: `Inspect Maven descriptors and apply every offered fix.

A version literal is replaced where it is declared; a version coming from a
property is replaced in the property definition, once for all dependencies
sharing it. With --commit the rewritten files (and CHANGELOG.md, when it has
an Unreleased section) are committed on the configured branch.`,
	}
}

// Execute inspects the given paths and rewrites them.
func (it *FixController) Execute(cmd *cobra.Command, args []string) {
	ctx, cancel := interruptibleContext()
	defer cancel()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	commit, _ := cmd.Flags().GetBool("commit")
	output, _ := cmd.Flags().GetString("output")

	sink, err := it.sinks.Get(output, os.Stdout)
	if err != nil {
		logger.Errorf("Fix failed: %v", err)
		return
	}

	if _, runErr := it.command.Execute(ctx, settings, commands.FixOptions{
		Paths:  pathsOrCurrentDir(args),
		DryRun: dryRun,
		Commit: commit,
		Sink:   sink,
	}); runErr != nil {
		logger.Errorf("Fix failed: %v", runErr)
	}
}

// AddFlags adds the fix-specific flags to the given Cobra command.
func (it *FixController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("commit", false, "Commit the rewritten files on the configured branch")
}
