package controllers

import (
	"context"
	"os"
	"sync"

	"github.com/robfig/cron/v3"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvnupdate/internal/domain/commands"
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	infraRepos "github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories"
)

const defaultSchedule = "@every 1h"

// WatchController handles the "watch" subcommand: inspection passes on a
// cron schedule until interrupted.
type WatchController struct {
	command commands.Inspect
	sinks   *infraRepos.SinkRegistry
}

// NewWatchController creates a new WatchController.
func NewWatchController(command commands.Inspect, sinks *infraRepos.SinkRegistry) *WatchController {
	return &WatchController{command: command, sinks: sinks}
}

// GetBind returns the Cobra command metadata for the watch controller.
func (it *WatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "watch [pom.xml|dir...]",
		Short: "Re-inspect descriptors on a schedule",
		Long: `Run an inspection pass right away and then on every tick of --schedule,
which accepts cron expressions and descriptors such as "@every 30m" or "@daily".
Stops on SIGINT or SIGTERM; a pass in flight is abandoned.`,
	}
}

// Execute runs passes until the process is interrupted.
func (it *WatchController) Execute(cmd *cobra.Command, args []string) {
	ctx, cancel := interruptibleContext()
	defer cancel()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	schedule, _ := cmd.Flags().GetString("schedule")
	output, _ := cmd.Flags().GetString("output")
	sink, err := it.sinks.Get(output, os.Stdout)
	if err != nil {
		logger.Errorf("Watch failed: %v", err)
		return
	}

	opts := commands.InspectOptions{Paths: pathsOrCurrentDir(args), Sink: sink}
	if watchErr := it.watch(ctx, schedule, func(passCtx context.Context) {
		if _, runErr := it.command.Execute(passCtx, settings, opts); runErr != nil {
			logger.Errorf("Inspection pass failed: %v", runErr)
		}
	}); watchErr != nil {
		logger.Errorf("Watch failed: %v", watchErr)
	}
}

// watch runs pass once, then on every schedule tick, never overlapping
// passes, until ctx is done.
func (it *WatchController) watch(ctx context.Context, schedule string, pass func(context.Context)) error {
	var mu sync.Mutex
	run := func() {
		if !mu.TryLock() {
			logger.Warn("[watch] previous pass still running, skipping this tick")
			return
		}
		defer mu.Unlock()
		pass(ctx)
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(schedule, func() {
		logger.Info("[watch] scheduled pass triggered")
		run()
	}); err != nil {
		return err
	}

	run()
	if ctx.Err() != nil {
		return nil
	}

	scheduler.Start()
	logger.Infof("[watch] next passes on %q, press Ctrl+C to stop", schedule)
	<-ctx.Done()
	<-scheduler.Stop().Done()
	logger.Info("[watch] stopped")
	return nil
}

// AddFlags adds the watch-specific flags to the given Cobra command.
func (it *WatchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("schedule", defaultSchedule, "Cron schedule of the inspection passes")
}
