package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"garmincoach/internal/storage"
)

// Store реализует storage.Store поверх SQLite.
type Store struct {
	db *sql.DB
}

// Open инициализирует соединение и выполняет миграции.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS dispatches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			op TEXT NOT NULL,
			kind TEXT NOT NULL,
			target TEXT,
			status TEXT NOT NULL,
			exit_code INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			diagnostic TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_dispatches_ts ON dispatches(ts);`,
		`CREATE INDEX IF NOT EXISTS idx_dispatches_op_ts ON dispatches(op, ts);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveDispatch сохраняет запись истории.
func (s *Store) SaveDispatch(ctx context.Context, rec storage.DispatchRecord) error {
	ts := rec.TS
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dispatches(op, kind, target, status, exit_code, duration_ms, diagnostic, ts) VALUES(?,?,?,?,?,?,?,?)`,
		rec.Op, rec.Kind, rec.Target, rec.Status, rec.ExitCode, rec.DurationMS, rec.Diagnostic, ts)
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// QueryDispatches возвращает историю по фильтрам, новые записи первыми.
func (s *Store) QueryDispatches(ctx context.Context, q storage.DispatchQuery) ([]storage.DispatchRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT op, kind, target, status, exit_code, duration_ms, diagnostic, ts
FROM dispatches
WHERE (? = '' OR op = ?)
ORDER BY ts DESC, id DESC
LIMIT ?`, q.Op, q.Op, limit)
	if err != nil {
		return nil, fmt.Errorf("query dispatches: %w", err)
	}
	defer rows.Close()

	records := make([]storage.DispatchRecord, 0, limit)
	for rows.Next() {
		var rec storage.DispatchRecord
		var ts string
		if err := rows.Scan(&rec.Op, &rec.Kind, &rec.Target, &rec.Status, &rec.ExitCode, &rec.DurationMS, &rec.Diagnostic, &ts); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		parsedTS, err := parseSQLiteTS(ts)
		if err != nil {
			return nil, fmt.Errorf("parse dispatch timestamp: %w", err)
		}
		rec.TS = parsedTS
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatches: %w", err)
	}
	return records, nil
}

func parseSQLiteTS(v string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported sqlite time format: %q", v)
}

// Close закрывает соединение.
func (s *Store) Close() error {
	return s.db.Close()
}
