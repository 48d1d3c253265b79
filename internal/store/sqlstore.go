package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations. Creates the
// parent directory (e.g. .liuyao) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		if _, err := s.db.Exec(schema); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		v = schemaVersion
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", v); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}
	if v != schemaVersion {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close closes the underlying database.
func (s *SqlStore) Close() error { return s.db.Close() }

// encodeLines renders changing-line positions as "1,3,5".
func encodeLines(lines []int) string {
	if len(lines) == 0 {
		return ""
	}
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func decodeLines(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	lines := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("changing lines %q: %w", s, err)
		}
		lines[i] = n
	}
	return lines, nil
}

// SaveReading inserts a reading and returns its ID. CreatedAt is stamped if
// empty.
func (s *SqlStore) SaveReading(r *Reading) (int64, error) {
	createdAt := r.CreatedAt
	if createdAt == "" {
		createdAt = nowUTC()
	}
	res, err := s.db.Exec(`
		INSERT INTO readings(created_at, question, date_input, code, changed_code,
			changing_lines, bazi_key, san_he_ju, chart_payload)
		VALUES(?,?,?,?,?,?,?,?,?)`,
		createdAt, r.Question, r.DateInput, r.Code, r.Changed,
		encodeLines(r.Lines), r.BaZiKey, r.SanHeJu, []byte(r.Chart))
	if err != nil {
		return 0, fmt.Errorf("insert reading: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading id: %w", err)
	}
	r.ID = id
	r.CreatedAt = createdAt
	return id, nil
}

// GetReading loads one reading with its full chart payload. Returns
// (nil, nil) when the ID does not exist.
func (s *SqlStore) GetReading(id int64) (*Reading, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, question, date_input, code, changed_code,
			changing_lines, bazi_key, san_he_ju, chart_payload
		FROM readings WHERE id = ?`, id)

	var r Reading
	var lines string
	var payload []byte
	err := row.Scan(&r.ID, &r.CreatedAt, &r.Question, &r.DateInput, &r.Code,
		&r.Changed, &lines, &r.BaZiKey, &r.SanHeJu, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reading %d: %w", id, err)
	}
	if r.Lines, err = decodeLines(lines); err != nil {
		return nil, err
	}
	r.Chart = payload
	return &r, nil
}

// ListReadings returns recent readings newest first, without chart payloads.
func (s *SqlStore) ListReadings(limit int) ([]*Reading, error) {
	q := `
		SELECT id, created_at, question, date_input, code, changed_code,
			changing_lines, bazi_key, san_he_ju
		FROM readings ORDER BY created_at DESC, id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(q+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	var out []*Reading
	for rows.Next() {
		var r Reading
		var lines string
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Question, &r.DateInput,
			&r.Code, &r.Changed, &lines, &r.BaZiKey, &r.SanHeJu); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		if r.Lines, err = decodeLines(lines); err != nil {
			return nil, err
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

// DeleteReading removes one reading. Deleting a missing ID is not an error.
func (s *SqlStore) DeleteReading(id int64) error {
	if _, err := s.db.Exec("DELETE FROM readings WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete reading %d: %w", id, err)
	}
	return nil
}
