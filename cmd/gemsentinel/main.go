// GemSentinel screens crypto markets for small-cap tokens with outsized activity.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"GemSentinel/internal/collector"
	"GemSentinel/internal/config"
	"GemSentinel/internal/recorder"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var cfg *config.Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemsentinel",
	Short: "GemSentinel - undervalued token screener",
	Long: `GemSentinel fetches crypto market data, keeps small caps with heavy
trading relative to their size, scores their upside potential and reports
the ranked board over Telegram, HTTP and the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		cfgPath, _ := cmd.Flags().GetString("config")
		if cfgPath == "" {
			cfgPath = "configs/config.yaml"
			if v := os.Getenv("CONFIG_PATH"); v != "" {
				cfgPath = v
			}
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: configs/config.yaml or $CONFIG_PATH)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("GemSentinel %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// newFetcher reads from a JSON file when input is set, otherwise from CoinGecko.
func newFetcher(input string) collector.Fetcher {
	if input != "" {
		return collector.NewFileFetcher(input)
	}
	return collector.NewCoinGeckoFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey,
		cfg.DataSource.VsCurrency, cfg.DataSource.PerPage, cfg.Proxy)
}

// newRecorder opens the SQLite journal when configured, falling back to noop.
func newRecorder() recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}
