// 15 Oct 2026
// A store for derived parameter sets, so runs can be looked up later.
// The payload is just the parameter file, so anything in the store can
// be pulled out and dropped into an output directory.

package paramstore

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/andrew-torda/mutparam/pkg/constants"
	"github.com/andrew-torda/mutparam/pkg/paramfile"
)

// ErrNotOpen is returned when the store is used before Init.
var ErrNotOpen = errors.New("parameter store is not initialised")

// Record describes one stored parameter set.
type Record struct {
	ID      string
	Created time.Time
	L       int
	Q       int
	MaxMut  int
}

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and makes the table if necessary. Calling it
// twice does nothing.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1) // one writer, or sqlite reports a locked database
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS parameter_sets (
			id      TEXT PRIMARY KEY,
			created INTEGER NOT NULL,
			l       INTEGER NOT NULL,
			q       INTEGER NOT NULL,
			max_mut INTEGER NOT NULL,
			payload TEXT NOT NULL
		)`); err != nil {
		_ = db.Close()
		return fmt.Errorf("creating table: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrNotOpen
	}
	return s.db, nil
}

// Save stores c and returns the id it was given.
func (s *SQLiteStore) Save(ctx context.Context, c *constants.Constants) (string, error) {
	db, err := s.getDB()
	if err != nil {
		return "", err
	}
	var payload bytes.Buffer
	if err := paramfile.Write(&payload, c); err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = db.ExecContext(ctx, `
		INSERT INTO parameter_sets (id, created, l, q, max_mut, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, time.Now().UnixNano(), c.L, c.Q, c.MaxMut(), payload.String())
	if err != nil {
		return "", fmt.Errorf("saving parameter set: %w", err)
	}
	return id, nil
}

// Get reads back a parameter set and derives everything again.
// found is false if there is no such id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (c *constants.Constants, found bool, err error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}
	var payload string
	err = db.QueryRowContext(ctx, `SELECT payload FROM parameter_sets WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	p, err := paramfile.Parse(bytes.NewReader([]byte(payload)), zerolog.Nop())
	if err != nil {
		return nil, false, err
	}
	if c, err = constants.New(p); err != nil {
		return nil, false, fmt.Errorf("parameter set %s: %w", id, err)
	}
	return c, true, nil
}

// List returns all records, oldest first.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT id, created, l, q, max_mut FROM parameter_sets ORDER BY created, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		var created int64
		if err := rows.Scan(&r.ID, &created, &r.L, &r.Q, &r.MaxMut); err != nil {
			return nil, err
		}
		r.Created = time.Unix(0, created)
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
