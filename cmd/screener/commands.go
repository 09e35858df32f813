package main

import (
	"fmt"
	"strings"

	"StockScreener/internal/index"
	"StockScreener/internal/notifier"
	"StockScreener/internal/scheduler"

	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare TICKER [BENCHMARK] [DAYS]",
		Short: "Report a ticker's performance against a benchmark",
		Long: `Report a ticker's daily return statistics, price snapshots and excess
performance against a benchmark. BENCHMARK defaults to S&P500 and DAYS to 90.`,
		Example: "  screener compare AAPL\n  screener compare MSFT DJIA 365\n  screener compare IBM \"Russell 2000\" 60",
		Args:    cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := scheduler.ParseCompareArgs(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			r, err := newScreener(cfg).Run(cmd.Context(), q)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), notifier.PlainText(notifier.FormatError(q, err)))
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), notifier.PlainText(notifier.FormatReport(r)))
			return nil
		},
	}
}

func constituentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "constituents INDEX",
		Short:     "List the ticker symbols of an index",
		Long:      fmt.Sprintf("List the ticker symbols of an index. Supported: %s.", strings.Join(index.Indices(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: index.Indices(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			lister := index.NewLister(cfg.Index.SP500URL, cfg.Index.DJIAURL, cfg.Proxy)
			symbols, err := lister.Constituents(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, s := range symbols {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func benchmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchmarks",
		Short: "List the supported benchmarks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), notifier.PlainText(notifier.FormatBenchmarks()))
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "StockScreener version %s\n", version)
		},
	}
}
