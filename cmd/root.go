package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/confirm"
	"github.com/lakshaymaurya-felt/winsweep/internal/logging"
	"github.com/lakshaymaurya-felt/winsweep/internal/report"
	"github.com/lakshaymaurya-felt/winsweep/internal/runner"
)

var (
	// Global flags
	debug      bool
	unattended bool
	cfgFile    string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "winsweep",
	Short: "Sweep stale temp, cache, log and crash-dump files",
	Long: `WinSweep - sweep stale low-value files off a Windows host.

Scans the standard temp, cache, log and crash-dump locations, reports
what is older than the configured thresholds, and deletes it after a
single confirmation. Files only; directory structures stay intact.
Run with -y for unattended operation (schedulers, login scripts).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg.Unattended = unattended
		cfg.Debug = debug

		closer := logging.Setup(cfg.Log, cfg.Debug)
		defer closer.Close()

		color := isatty.IsTerminal(os.Stdout.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdout.Fd())

		decide := confirm.Prompt(os.Stdin, os.Stdout)
		if cfg.Unattended {
			decide = confirm.Always()
		}

		r := runner.Runner{
			Config:        cfg,
			Printer:       report.NewPrinter(os.Stdout, color),
			Decide:        decide,
			FreeSpacePath: config.SystemDrive(),
		}
		_, err = r.Run()
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.Flags().BoolVarP(&unattended, "yes", "y", false, "Delete without asking (unattended mode)")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Path to winsweep.yaml")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
