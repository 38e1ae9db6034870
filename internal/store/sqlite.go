package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/inovacc/edcourse/internal/encoding"
	"github.com/inovacc/edcourse/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteConfigName = "config"

// SQLite is a Store backed by a SQLite file. Each slot is one row.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) a SQLite database at the specified path.
func NewSQLite(path string) (*SQLite, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS config (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create config table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var payload []byte

	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}

	return payload, nil
}

func (s *SQLite) Set(key string, blob []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	if blob == nil {
		blob = []byte{}
	}

	if _, err := s.db.Exec(`INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, key, blob); err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}

	return nil
}

func (s *SQLite) GetConfig() (*model.Config, error) {
	var payload []byte

	err := s.db.QueryRow(`SELECT payload FROM config WHERE name = ?`, sqliteConfigName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return decodeConfig(nil)
	}

	if err != nil {
		return nil, fmt.Errorf("select config: %w", err)
	}

	return decodeConfig(payload)
}

func (s *SQLite) SaveConfig(cfg *model.Config) error {
	data, err := encodeConfig(cfg)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(`INSERT INTO config (name, payload) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`, sqliteConfigName, data); err != nil {
		return fmt.Errorf("upsert config: %w", err)
	}

	return nil
}
