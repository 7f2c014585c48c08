package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetyard/wingetprobe/internal/config"
	"github.com/fleetyard/wingetprobe/internal/detect"
)

type batchOptions struct {
	ManifestPath string
	Timeout      time.Duration
	Verbose      bool
}

var batchCmdRunner = runBatch

func newBatchCmd(root *rootFlags) *cobra.Command {
	opts := batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <manifest-file>",
		Short: "Detect every package listed in a YAML manifest",
		Long: `Batch runs one detection per package in the manifest and terminates with
the most severe single outcome, so a polling agent can treat the manifest as
one compliance unit: 10 beats 4 beats 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ManifestPath = args[0]
			opts.Verbose = root.verbose
			return batchCmdRunner(opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Timeout per winget invocation; defaults to WINGETPROBE_TIMEOUT or 30s")

	return cmd
}

func runBatch(opts batchOptions) error {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		osExit(2)
		return nil
	}

	manifest, err := config.ParseManifest(opts.ManifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing manifest: %v\n", err)
		osExit(2)
		return nil
	}

	worst := detect.Satisfied
	for _, spec := range manifest.Packages {
		outcome := detectOne(settings, opts, spec)
		if outcome.MoreSevere(worst) {
			worst = outcome
		}
	}

	osExit(worst.ExitCode())
	return nil
}

// detectOne runs a single detection with its own per-package transcript, so
// batch runs leave the same operator trail as individual probes.
func detectOne(settings config.Settings, opts batchOptions, spec config.PackageSpec) detect.Outcome {
	log, err := newRunLogger(settings, opts.Verbose, spec.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger for %s: %v\n", spec.ID, err)
		return detect.NotDetected
	}
	defer log.Close()

	detector := newDetector(settings, opts.Timeout, log)
	outcome := detector.Detect(context.Background(), detect.Request{
		PackageID:  spec.ID,
		MinVersion: spec.MinVersion,
	})

	log.WithFields(map[string]any{
		"package":   spec.ID,
		"outcome":   outcome.String(),
		"exit_code": outcome.ExitCode(),
	}).Info("detection complete")

	return outcome
}
