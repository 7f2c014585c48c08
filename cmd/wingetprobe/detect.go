package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetyard/wingetprobe/internal/config"
	"github.com/fleetyard/wingetprobe/internal/detect"
	"github.com/fleetyard/wingetprobe/internal/logger"
	"github.com/fleetyard/wingetprobe/internal/winget"
)

type detectOptions struct {
	PackageID  string
	MinVersion string
	Timeout    time.Duration
	Verbose    bool
}

var detectCmdRunner = runDetect

func newDetectCmd(root *rootFlags) *cobra.Command {
	opts := detectOptions{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect whether a package is installed at a satisfying version",
		Long: `Detect locates winget, queries it for the package using up to three lookup
strategies of decreasing reliability, and terminates with exit code 0 when
the requirement is met, 4 when the installed version is below the required
minimum, and 10 when winget is unusable or the package was not found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			return detectCmdRunner(opts)
		},
	}

	cmd.Flags().StringVar(&opts.PackageID, "id", "", "Exact package identifier to detect")
	cmd.Flags().StringVar(&opts.MinVersion, "min-version", "", "Minimum acceptable version; blank accepts any version")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Timeout per winget invocation; defaults to WINGETPROBE_TIMEOUT or 30s")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runDetect(opts detectOptions) error {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		osExit(2)
		return nil
	}

	log, err := newRunLogger(settings, opts.Verbose, opts.PackageID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		osExit(3)
		return nil
	}
	defer log.Close()

	detector := newDetector(settings, opts.Timeout, log)

	outcome := detector.Detect(context.Background(), detect.Request{
		PackageID:  opts.PackageID,
		MinVersion: opts.MinVersion,
	})

	log.WithFields(map[string]any{
		"package":   opts.PackageID,
		"outcome":   outcome.String(),
		"exit_code": outcome.ExitCode(),
	}).Info("detection complete")

	_ = log.Close()
	osExit(outcome.ExitCode())
	return nil
}

func newRunLogger(settings config.Settings, verbose bool, packageID string) (*logger.Logger, error) {
	level := settings.LogLevel
	if verbose {
		level = "debug"
	}

	transcript := ""
	if settings.LogDir != "" {
		transcript = logger.TranscriptPath(settings.LogDir, packageID)
	}

	return logger.New(logger.Options{Level: level, HumanReadable: true, TranscriptPath: transcript})
}

func newDetector(settings config.Settings, timeout time.Duration, log *logger.Logger) *detect.Detector {
	if timeout <= 0 {
		timeout = settings.Timeout
	}

	var locator detect.ToolLocator
	if settings.ToolPath != "" {
		locator = winget.NewLocatorWithOverride(settings.ToolPath)
	} else {
		locator = winget.NewLocator()
	}

	return detect.NewDetector(locator, detect.DefaultStrategies(timeout), log)
}
