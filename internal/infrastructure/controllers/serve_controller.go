package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/mvnupdate/internal/domain/commands"
	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

const (
	defaultAddr       = "127.0.0.1:8080"
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	inspect commands.Inspect
	fix     commands.Fix
}

// NewServeController creates a new ServeController.
func NewServeController(inspect commands.Inspect, fix commands.Fix) *ServeController {
	return &ServeController{inspect: inspect, fix: fix}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Serve inspections over HTTP",
		Long: `Start a local daemon for editors and other hosts.

  POST /inspect?path=<file>   body: pom.xml content, returns the diagnostics
  POST /fix                   body: {"content": ..., "fixes": [...]}, returns the new content
  GET  /health`,
	}
}

// Execute serves until SIGINT or SIGTERM.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	ctx, cancel := interruptibleContext()
	defer cancel()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	addr, _ := cmd.Flags().GetString("addr")
	origins, _ := cmd.Flags().GetStringSlice("allowed-origin")

	server := &http.Server{
		Addr:              addr,
		Handler:           NewServeHandler(it.inspect, it.fix, settings).Routes(origins),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Errorf("failed to shut down: %v", shutdownErr)
		}
	}()

	logger.Infof("Listening on %s", addr)
	if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		logger.Errorf("Serve failed: %v", serveErr)
	}
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", defaultAddr, "Address to listen on")
	cmd.Flags().StringSlice("allowed-origin", []string{"http://localhost:*"}, "CORS allowed origins")
}
