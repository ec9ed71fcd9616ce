package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"GemSentinel/internal/collector"
	"GemSentinel/internal/model"
	"GemSentinel/internal/notifier"
	"GemSentinel/internal/screener"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Fetch market data once and print the ranked board",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.ScreenerOptions()
		if err != nil {
			return err
		}
		if err := applyScanFlags(cmd, &opts); err != nil {
			return err
		}
		input, _ := cmd.Flags().GetString("input")

		col := collector.NewCollector(newFetcher(input))
		snap, err := col.Collect(cmd.Context())
		if err != nil {
			return err
		}

		res := screener.Run(snap.Records, opts)
		res.ID = snap.ID
		res.Source = snap.Source
		res.FetchedAt = snap.FetchedAt

		fmt.Print(notifier.FormatTable(res))
		fmt.Println()
		fmt.Print(notifier.TextScoreChart(res.Chart))

		rec := newRecorder()
		defer rec.Close()
		if err := rec.RecordScan(res); err != nil {
			log.Printf("[ERROR] record scan: %v", err)
		}
		return nil
	},
}

func init() {
	addScanFlags(scanCmd)
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("sort", "", "sort field (potentialScore, marketCap, totalVolume, priceChangePercent24h, totalSupply, circulatingSupply, currentPrice)")
	cmd.Flags().String("dir", "", "sort direction (asc, desc)")
	cmd.Flags().Int("limit", 0, "number of gems to show")
	cmd.Flags().Bool("strict", false, "also enforce the momentum and supply criteria")
	cmd.Flags().String("input", "", "read market records from a JSON file instead of the API")
}

// applyScanFlags overrides configured options with flags the user set explicitly.
func applyScanFlags(cmd *cobra.Command, opts *screener.Options) error {
	flags := cmd.Flags()
	if flags.Changed("sort") {
		v, _ := flags.GetString("sort")
		f, err := model.ParseField(v)
		if err != nil {
			return err
		}
		opts.Field = f
	}
	if flags.Changed("dir") {
		v, _ := flags.GetString("dir")
		d, err := model.ParseDirection(v)
		if err != nil {
			return err
		}
		opts.Direction = d
	}
	if flags.Changed("limit") {
		n, _ := flags.GetInt("limit")
		if n < 1 {
			return fmt.Errorf("--limit must be positive")
		}
		opts.Limit = n
	}
	if flags.Changed("strict") {
		strict, _ := flags.GetBool("strict")
		opts.Criteria = screener.DefaultCriteria()
		if strict {
			opts.Criteria = screener.StrictCriteria()
		}
	}
	return nil
}
