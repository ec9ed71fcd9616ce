package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"GemSentinel/internal/model"
)

// SQLiteRecorder journals scan results to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets dashboards read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			source      TEXT,
			sort_field  TEXT,
			direction   TEXT,
			total       INTEGER,
			eligible    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,

		`CREATE TABLE IF NOT EXISTS scan_gems (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id            TEXT NOT NULL REFERENCES scans(id),
			rank               INTEGER NOT NULL,
			coin_id            TEXT,
			symbol             TEXT,
			name               TEXT,
			market_cap         REAL,
			total_volume       REAL,
			price_change_24h   REAL,
			total_supply       REAL,
			circulating_supply REAL,
			score              INTEGER,
			factors            TEXT,
			narrative          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_gems_scan ON scan_gems(scan_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_gems_coin ON scan_gems(coin_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan writes the scan header and its gems in one transaction.
func (r *SQLiteRecorder) RecordScan(res *model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO scans
		(id, timestamp, source, sort_field, direction, total, eligible)
		VALUES (?,?,?,?,?,?,?)`,
		res.ID, res.FetchedAt.Unix(), res.Source,
		string(res.SortField), string(res.Direction), res.Total, res.Eligible,
	); err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}

	for i, g := range res.Gems {
		rec := g.Record
		if _, err := tx.Exec(`INSERT INTO scan_gems
			(scan_id, rank, coin_id, symbol, name, market_cap, total_volume, price_change_24h,
			 total_supply, circulating_supply, score, factors, narrative)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			res.ID, i+1, rec.ID, rec.Symbol, rec.Name,
			rec.MarketCap, rec.TotalVolume, rec.PriceChangePercent24h,
			nullable(rec.TotalSupply), nullable(rec.CirculatingSupply),
			g.Score.Value, strings.Join(g.Score.Factors, "; "), g.Narrative,
		); err != nil {
			return fmt.Errorf("insert gem %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

func nullable(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
