package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/handiism/qrgen/internal/config"
	"github.com/handiism/qrgen/internal/generate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
//
// Exit codes: 0 when the run completed, even if the URL was invalid or the
// image could not be produced; 1 when the output directory could not be
// created or placed; 2 on command line errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	settings, cfgErr := config.Load(config.DefaultEnvFile)

	if args == nil {
		args = []string{}
	}

	cmd := rootCmd(settings, cfgErr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, generate.ErrDirectory):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
}

func rootCmd(settings *config.Settings, cfgErr error) *cobra.Command {
	var targetURL string
	cmd := &cobra.Command{
		Use:           "qrgen",
		Short:         "Generate a QR code PNG for a URL",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, levelErr := setupLogging(cmd.OutOrStdout(), settings.LogLevel)
			if levelErr != nil {
				logger.WithError(levelErr).Warnf("Ignoring %s, using %s", config.EnvLogLevel, logger.GetLevel())
			}
			if cfgErr != nil {
				logger.WithError(cfgErr).Warnf("Ignoring %s", config.DefaultEnvFile)
			}

			// Without a working directory the output directory cannot be placed.
			workDir, err := os.Getwd()
			if err != nil {
				logger.WithError(err).Error("Failed to resolve working directory")
				return fmt.Errorf("%w: %v", generate.ErrDirectory, err)
			}
			return generateQRCode(cmd.Context(), logger, settings, workDir, targetURL)
		},
	}
	cmd.Flags().StringVar(&targetURL, "url", settings.DefaultURL, "The URL to encode in the QR code")
	return cmd
}

// setupLogging returns the logger used for the whole run.
// An unknown level name leaves the logger at Info and is returned as an error.
func setupLogging(w io.Writer, level string) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(log.InfoLevel)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return logger, err
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func generateQRCode(ctx context.Context, logger *log.Logger, settings *config.Settings, workDir, targetURL string) error {
	g := generate.NewGenerator(settings, workDir, generate.WithStateHook(func(s generate.State) {
		logger.WithField("state", s.String()).Debug("State changed")
	}))

	res, err := g.Run(ctx, targetURL)
	if err != nil {
		logger.WithError(err).Errorf("Failed to create directory %s", res.Output.Dir)
		return err
	}

	generate.Report(logger, res)
	return nil
}
