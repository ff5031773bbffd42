package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/viant/staticmcp"
)

const troubleshooting = `Troubleshooting:
  1. Check that mcp.json exists at the specified location
  2. Verify the URL/path is accessible
  3. Ensure the JSON is valid`

// Run parses args, starts the configured deployment and blocks until it stops
// or the process is interrupted.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	config, err := options.Config(ctx)
	if err != nil {
		return err
	}
	config.Init()
	logger, err := NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)
	if config.Mode == staticmcp.ModeFixed {
		logger.Info("starting fixed bridge", "source", config.Source)
	} else {
		logger.Info("starting dynamic bridge")
	}
	service, err := staticmcp.New(ctx, config, logger)
	if err != nil {
		if config.Mode == staticmcp.ModeFixed && config.Source != "" {
			return fmt.Errorf("failed to initialize bridge: %w\n\n%v", err, troubleshooting)
		}
		return err
	}
	return service.ListenAndServe(ctx)
}

// NewLogger creates the process logger writing to w, which must not be stdout
// when the stdio transport is used.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "staticmcp",
	})
	logger.SetLevel(parsed)
	return logger, nil
}
