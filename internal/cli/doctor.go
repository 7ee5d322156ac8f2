package cli

import (
	"fmt"
	"time"

	"github.com/cartesi/cli/internal/config"
	"github.com/cartesi/cli/internal/process"
	"github.com/cartesi/cli/internal/requirements"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRunner builds the process runner used by doctor. Replaced in tests.
var newRunner = func(timeout time.Duration, l *zap.Logger) process.Runner {
	return process.NewExecRunner(process.WithTimeout(timeout), process.WithLogger(l))
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verify the system requirements",
	Long: `Check that Docker, Docker Compose and Docker Buildx are installed at supported
versions and that Buildx can build linux/riscv64 images. Stops at the first problem found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}

		runner := newRunner(settings.Doctor.Timeout, logger)
		v := requirements.New(runner, requirements.WithLogger(logger))

		outcome, err := v.Verify(cmd.Context())
		if err != nil {
			return err
		}
		if err := outcome.Err(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Your system is ready.")
		return nil
	},
}
