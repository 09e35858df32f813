package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockScreener/internal/collector"
	"StockScreener/internal/config"
	"StockScreener/internal/notifier"
	"StockScreener/internal/scheduler"
	"StockScreener/internal/screener"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfgPath string
	useMock bool
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:   "screener",
		Short: "Compare a stock's daily returns against a market benchmark",
		Long: `screener fetches daily closes for a ticker and a benchmark ETF, then reports
average return, risk, price snapshots and excess performance over the lookback window.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.Path(), "Config file path")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "Use generated prices instead of a data provider")

	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(constituentsCmd())
	rootCmd.AddCommand(benchmarksCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	var fetcher collector.Fetcher
	switch {
	case useMock:
		fetcher = &collector.MockFetcher{Price: 100}
	case cfg.DataSource.BaseURL != "":
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.DataSource.RateLimit)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())
	return fetcher
}

func newScreener(cfg *config.Config) *screener.Screener {
	return screener.New(collector.NewCollector(newFetcher(cfg)))
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the Telegram bot and the scheduled watchlist report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Println("[INFO] StockScreener starting...")
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateTelegram(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			// Context for graceful shutdown
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

			sched := scheduler.NewScheduler(ctx, newScreener(cfg), tn, cfg.Watchlist)
			if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			go tn.StartPolling(ctx, sched.HandleCommand)
			log.Println("[INFO] Telegram polling started")

			// Optional: run immediately on start
			if os.Getenv("RUN_ON_START") == "true" {
				log.Println("[INFO] RUN_ON_START enabled, executing watchlist report now")
				go sched.RunReportNow()
			}

			log.Printf("[INFO] StockScreener is running with %d watchlist entries. Press Ctrl+C to stop.", len(cfg.Watchlist))
			<-ctx.Done()
			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
}
