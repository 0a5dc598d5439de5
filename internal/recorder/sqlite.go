package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
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

	// WAL mode so the dashboard can read while the refresh loop writes.
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
		`CREATE TABLE IF NOT EXISTS signals (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT,
			trend           TEXT,
			position        TEXT,
			close           REAL,
			fast_sma_window INTEGER,
			fast_sma        REAL,
			slow_sma_window INTEGER,
			slow_sma        REAL,
			rsi             REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(timestamp)`,

		`CREATE TABLE IF NOT EXISTS insights (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			symbol    TEXT,
			insight   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_insights_ts ON insights(timestamp)`,

		`CREATE TABLE IF NOT EXISTS queries (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			question     TEXT,
			top_document TEXT,
			top_score    REAL,
			result_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_ts ON queries(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSignal(sig *model.TradingSignal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO signals
		(timestamp, symbol, trend, position, close,
		 fast_sma_window, fast_sma, slow_sma_window, slow_sma, rsi)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), sig.Symbol, string(sig.Trend), string(sig.Position), sig.Close,
		sig.FastSMA.Window, sig.FastSMA.Value, sig.SlowSMA.Window, sig.SlowSMA.Value, sig.RSI,
	)
	return err
}

func (r *SQLiteRecorder) RecordInsights(symbol string, insights []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, insight := range insights {
		if _, err := r.db.Exec(`INSERT INTO insights (timestamp, symbol, insight) VALUES (?,?,?)`,
			now, symbol, insight); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuery(question string, results []model.QueryResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	topDoc, topScore := "", 0.0
	if len(results) > 0 {
		topDoc = results[0].Document.Text
		topScore = results[0].Score
	}
	_, err := r.db.Exec(`INSERT INTO queries
		(timestamp, question, top_document, top_score, result_count)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), question, topDoc, topScore, len(results),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
