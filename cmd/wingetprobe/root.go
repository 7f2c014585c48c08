package main

import (
	"os"

	"github.com/spf13/cobra"
)

// osExit is swapped out in tests to observe exit codes.
var osExit = os.Exit

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "wingetprobe",
		Short: "wingetprobe reports package presence on a host through its exit code",
		Long: `wingetprobe queries the Windows Package Manager to determine whether a
package is installed at a satisfying version. The result is reported solely
through the process exit code so a fleet-management agent can poll it on a
schedule: 0 means satisfied, 4 means the installed version is below the
required minimum, 10 means winget is unusable or the package was not found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newDetectCmd(flags))
	cmd.AddCommand(newBatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
