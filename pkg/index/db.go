package index

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	dbName    = "sortery_index.sqlite3"
	tableName = "FileHash"
)

// HashDB maps paths, relative to the directory holding the database, to the
// content hash and capture date of the file.
type HashDB struct {
	db *sql.DB
}

func Open(dir string) (*HashDB, error) {
	db, err := openOrCreate(dir)
	if err != nil {
		return nil, err
	}
	return &HashDB{db: db}, nil
}

// GetHash returns the hash stored for path, or "" when path is not indexed.
func (h *HashDB) GetHash(path string) (string, error) {
	var hash string
	err := h.db.QueryRow("SELECT hash FROM "+tableName+" WHERE path=?", path).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read failed: %w", err)
	}
	return hash, nil
}

// GetName returns the path first indexed with hash, or "".
func (h *HashDB) GetName(hash string) (string, error) {
	var existing string
	err := h.db.QueryRow("SELECT path FROM "+tableName+" WHERE hash=?", hash).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		err = fmt.Errorf("read failed: %w", err)
	}
	return existing, err
}

// GetTaken returns the capture date stored for path; zero when unknown.
func (h *HashDB) GetTaken(path string) (time.Time, error) {
	var taken sql.NullInt64
	err := h.db.QueryRow("SELECT taken FROM "+tableName+" WHERE path=?", path).Scan(&taken)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("read failed: %w", err)
	}
	if !taken.Valid {
		return time.Time{}, nil
	}
	return time.Unix(taken.Int64, 0), nil
}

func (h *HashDB) Insert(path, hash string, taken time.Time) error {
	var t sql.NullInt64
	if !taken.IsZero() {
		t = sql.NullInt64{Int64: taken.Unix(), Valid: true}
	}
	_, err := h.db.Exec("INSERT INTO "+tableName+" (path, hash, taken) VALUES (?, ?, ?)", path, hash, t)
	if err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}

func (h *HashDB) UpdatePath(path, hash string) error {
	_, err := h.db.Exec("UPDATE "+tableName+" SET path=? WHERE hash=?", path, hash)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	return nil
}

func (h *HashDB) Count() (int, error) {
	var n int
	err := h.db.QueryRow("SELECT count(*) FROM " + tableName).Scan(&n)
	return n, err
}

func (h *HashDB) Close() error {
	return h.db.Close()
}

func openOrCreate(dir string) (*sql.DB, error) {
	dbf := filepath.Join(dir, dbName)
	db, err := sql.Open("sqlite3", dbf)
	if err != nil {
		return nil, err
	}
	if err := initDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create sqlite file %s: %w", dbf, err)
	}
	return db, nil
}

func initDB(db *sql.DB) error {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS " + tableName + " (path varchar primary key, hash varchar, taken integer)")
	if err != nil {
		return err
	}
	_, err = db.Exec("CREATE INDEX IF NOT EXISTS Index_hash on " + tableName + "(hash)")
	return err
}
