package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rpgo-forecast",
		Short: "Monte Carlo forecast of a portfolio's future value",
		Long: `rpgo-forecast estimates the future value of an investment by simulating
annual returns drawn from a normal distribution, and reports the expected
value together with best (90th percentile) and worst (10th percentile) cases.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from RPGO_LOG_LEVEL or info)")

	rootCmd.AddCommand(
		newForecastCmd(),
		newExampleCmd(),
		newProfilesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
