// Package receipt persists one record per lifecycle run in a SQLite
// database under the user's state directory, so the history of installs
// and uninstalls survives the uninstall itself. The store is
// best-effort: it degrades to a no-op when the database cannot be
// opened, and a store failure never aborts a run.
package receipt

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/ports"
)

// SQLiteStore implements ports.ReceiptStore.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) <stateDir>/bootstrap.db.
func NewSQLiteStore(stateDir string) *SQLiteStore {
	path := filepath.Join(stateDir, "bootstrap.db")
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return &SQLiteStore{path: path}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		operation TEXT,
		outcome TEXT,
		failed_step TEXT,
		error TEXT,
		warnings INTEGER,
		data_dir TEXT,
		bin_dir TEXT,
		install_root TEXT,
		prefix TEXT
	);`)
	return err
}

// Record inserts one lifecycle result.
func (s *SQLiteStore) Record(result domain.LifecycleResult) error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	errText := ""
	if result.Err != nil {
		errText = result.Err.Error()
	}
	_, err := s.db.Exec(`INSERT INTO runs
		(timestamp, operation, outcome, failed_step, error, warnings, data_dir, bin_dir, install_root, prefix)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.FinishedAt.Format(time.RFC3339),
		string(result.Operation),
		string(result.Outcome),
		string(result.FailedStep),
		errText,
		len(result.Warnings),
		result.Locations.DataDir,
		result.Locations.BinDir,
		result.Locations.InstallRoot,
		result.Locations.Prefix,
	)
	return err
}

// Runs returns the most recent receipts, newest first.
func (s *SQLiteStore) Runs(limit int) ([]domain.Receipt, error) {
	if s.db == nil {
		return nil, nil
	}
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, timestamp, operation, outcome, failed_step, error, warnings,
		data_dir, bin_dir, install_root, prefix FROM runs ORDER BY id DESC`)
	var args []interface{}
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		var rec domain.Receipt
		var ts, op, outcome, step string
		if err := rows.Scan(&rec.ID, &ts, &op, &outcome, &step, &rec.Error, &rec.Warnings,
			&rec.DataDir, &rec.BinDir, &rec.Root, &rec.Prefix); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Operation = domain.Operation(op)
		rec.Outcome = domain.Outcome(outcome)
		rec.FailedStep = domain.Step(step)
		receipts = append(receipts, rec)
	}
	return receipts, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.ReceiptStore = (*SQLiteStore)(nil)
