package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvnupdate/internal"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/controllers"
)

// flagAdder is implemented by controllers with subcommand-specific flags.
type flagAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand(inspectController *controllers.InspectController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "mvnupdate [pom.xml|dir...]",
		Short: "Find and upgrade outdated Maven dependency versions",
		Long: `Inspects Maven pom.xml descriptors for dependencies whose declared version
is older than the newest published one, and offers (or applies) the rewrite
of the version element or of the property the version comes from.

Usage modes:
  mvnupdate .                  Inspect ./pom.xml
  mvnupdate fix pom.xml        Rewrite outdated versions in place
  mvnupdate watch .            Re-inspect on a schedule
  mvnupdate serve              Serve inspections over HTTP`,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			inspectController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().StringP("output", "o", "text",
		"Diagnostic output format (text, json, log)")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				controller.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if adder, ok := controller.(flagAdder); ok {
			adder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	container := newContainer()
	cobraRoot := buildRootCommand(injectInspectController(container))

	// Add all subcommands
	addSubcommands(cobraRoot, injectAppContext(container))

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'mvnupdate': %s", err)
	}
}
