package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harehare/mq-task/internal/branding"
	"github.com/harehare/mq-task/internal/config"
	"github.com/harehare/mq-task/internal/installer"
	"github.com/harehare/mq-task/internal/logger"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: `Downloads the latest ` + branding.DisplayName() + ` release for this machine,
verifies its checksum, installs it under ~/` + branding.HomeDir() + `/bin, and
registers that directory on your shell PATH.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
			logger.SetLevel(lvl)
		}

		return installer.New(cfg).Run(cmd.Context())
	},
}

// Execute runs the root command with build info injected via ldflags.
// Interruption via SIGINT/SIGTERM cancels in-flight work through the
// command context; deferred cleanups still run.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
