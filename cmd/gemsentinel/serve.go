package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"GemSentinel/internal/api"
	"GemSentinel/internal/collector"
	"GemSentinel/internal/notifier"
	"GemSentinel/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run scheduled scans, Telegram commands and the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.ScreenerOptions()
		if err != nil {
			return err
		}
		runNow, _ := cmd.Flags().GetBool("now")
		if os.Getenv("RUN_ON_START") == "true" {
			runNow = true
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fetcher := newFetcher("")
		log.Printf("[INFO] data source: %s", fetcher.Name())
		col := collector.NewCollector(fetcher)

		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		rec := newRecorder()
		defer rec.Close()

		sched := scheduler.NewScheduler(ctx, col, tn, rec, opts)
		if err := sched.RegisterAll(cfg.Schedule.ScanCron); err != nil {
			return err
		}
		srv := api.NewServer(sched, opts, cfg.API.CORSOrigins)

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			sched.Start()
			<-gctx.Done()
			sched.Stop()
			return nil
		})

		if tn.Enabled() {
			g.Go(func() error {
				log.Println("[INFO] Telegram polling started")
				tn.StartPolling(gctx, sched.HandleCommand)
				return nil
			})
		} else {
			log.Println("[WARN] Telegram not configured, reports and commands disabled")
		}

		g.Go(func() error {
			return srv.ListenAndServe(gctx, cfg.API.Addr)
		})

		if runNow {
			log.Println("[INFO] running scan on start")
			g.Go(func() error {
				sched.RunScanNow()
				return nil
			})
		}

		log.Println("[INFO] GemSentinel is running. Press Ctrl+C to stop.")
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		log.Println("[INFO] GemSentinel stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().Bool("now", false, "run a scan immediately on start")
}
