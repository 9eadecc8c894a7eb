package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/social-network/DAO/config"
	"github.com/social-network/DAO/config/presets"
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dao-inflation",
		Short:         "compute era payouts of the inflation schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	AddCommands(root)
	root.AddCommand(payoutCmd(), tableCmd(), projectCmd(), versionCmd())
	return root
}

// AddCommands adds the persistent flags shared by all subcommands.
func AddCommands(cmd *cobra.Command) {
	defaults := config.DefaultConfig()

	cmd.PersistentFlags().StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	cmd.PersistentFlags().StringP("config", "c", defaults.ConfigFile,
		"Set Load configuration from file")
	cmd.PersistentFlags().String("width", WidthU128,
		fmt.Sprintf("integer width of amounts (%s)", strings.Join([]string{WidthU64, WidthU128, WidthU256}, ", ")))
	cmd.PersistentFlags().String("network", defaults.Network,
		"network name used to label pushed metrics")

	/** ======================== Logging Flags ========================== **/
	cmd.PersistentFlags().String("log-encoder", defaults.Logging.Encoder,
		"Log as JSON instead of plain text")
	cmd.PersistentFlags().String("log-level", defaults.Logging.AppLoggerLevel,
		"log level of every module")

	/** ======================== Metrics Flags ========================== **/
	cmd.PersistentFlags().Bool("metrics", defaults.CollectMetrics,
		"serve metrics while the command runs")
	cmd.PersistentFlags().Int("metrics-port", defaults.MetricsPort,
		"metric server port")
	cmd.PersistentFlags().String("metrics-push", defaults.URL,
		"Push metrics to url when the command finishes")
	cmd.PersistentFlags().String("metrics-push-job", defaults.Job,
		"job name of pushed metrics")

	/** ======================== Inflation Flags ========================== **/
	cmd.PersistentFlags().Int("decay-cache-size", defaults.Inflation.DecayCacheSize,
		"number of decay factors kept in memory, 0 disables the cache")
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, Version)
			if Commit != "" {
				fmt.Fprintf(out, "+%s", Commit)
			}
			fmt.Fprintln(out)
		},
	}
}
