package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"GemSentinel/internal/collector"
	"GemSentinel/internal/model"
	"GemSentinel/internal/notifier"
	"GemSentinel/internal/recorder"
	"GemSentinel/internal/screener"
)

// ErrNoSnapshot is returned before the first successful acquisition.
var ErrNoSnapshot = errors.New("no market snapshot acquired yet")

// Scheduler runs scans on a cron schedule and holds the latest market snapshot.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Options   screener.Options
	Ctx       context.Context

	mu     sync.RWMutex
	latest *model.Snapshot
}

// NewScheduler creates a new Scheduler. opts is the board used for scheduled reports.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, opts screener.Options) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Options:   opts,
		Ctx:       ctx,
	}
}

// RegisterAll registers the periodic scan task.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

// Refresh acquires a new snapshot and makes it the latest one.
func (s *Scheduler) Refresh(ctx context.Context) (*model.Snapshot, error) {
	snap, err := s.Collector.Collect(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()
	return snap, nil
}

// Latest returns the most recent snapshot, or nil.
func (s *Scheduler) Latest() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Board runs the screener over the latest snapshot. Scores are recomputed on every call.
func (s *Scheduler) Board(opts screener.Options) (*model.ScanResult, error) {
	snap := s.Latest()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return boardFor(snap, opts), nil
}

func boardFor(snap *model.Snapshot, opts screener.Options) *model.ScanResult {
	res := screener.Run(snap.Records, opts)
	res.ID = snap.ID
	res.Source = snap.Source
	res.FetchedAt = snap.FetchedAt
	return res
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running scan task")
	snap, err := s.Refresh(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] scan collect: %v", err)
		s.trySend(fmt.Sprintf("❌ Market data fetch failed: %v", err))
		return
	}

	res := boardFor(snap, s.Options)
	log.Printf("[INFO] scan %s: %d records, %d eligible, %d gems", res.ID, res.Total, res.Eligible, len(res.Gems))

	s.trySend(notifier.FormatGemReport(res) + "\n" + notifier.FormatScoreChart(res.Chart))

	if err := s.Recorder.RecordScan(res); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	switch command {
	case "/gems", "/chart":
		res, err := s.Board(s.Options)
		if errors.Is(err, ErrNoSnapshot) {
			if _, err = s.Refresh(ctx); err == nil {
				res, err = s.Board(s.Options)
			}
		}
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		if command == "/chart" {
			return notifier.FormatScoreChart(res.Chart)
		}
		return notifier.FormatGemReport(res)
	case "/criteria":
		return notifier.FormatCriteria(s.Options.Criteria.Describe())
	case "/scan":
		s.scanTask()
		return ""
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
