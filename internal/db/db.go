package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jmpaz/wl-color-picker/pkg/models"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS picks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hex TEXT NOT NULL,
		name TEXT,
		adjusted BOOLEAN,
		picked_at DATETIME,
		hostname TEXT,
		user TEXT
	);`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create picks table: %w", err)
	}
	return nil
}

func (s *Store) Save(p *models.Pick) error {
	res, err := s.db.Exec(`
		INSERT INTO picks (hex, name, adjusted, picked_at, hostname, user)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Hex, p.Name, p.Adjusted, p.PickedAt, p.Hostname, p.User,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pick: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// List returns the newest picks first. A non-empty filter substring-matches
// against both the hex value and the name.
func (s *Store) List(limit int, filter string) ([]models.Pick, error) {
	baseQuery := `
	SELECT id, hex, name, adjusted, picked_at, hostname, user
	FROM picks`

	var args []interface{}
	if filter != "" {
		baseQuery += " WHERE hex LIKE ? OR name LIKE ?"
		pattern := "%" + filter + "%"
		args = append(args, pattern, pattern)
	}

	baseQuery += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks: %w", err)
	}
	defer rows.Close()

	var results []models.Pick
	for rows.Next() {
		var p models.Pick
		if err := rows.Scan(&p.ID, &p.Hex, &p.Name, &p.Adjusted, &p.PickedAt, &p.Hostname, &p.User); err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// Prune deletes records older than olderThan (when > 0) and then any records
// beyond the keep newest (when keep > 0). It returns how many rows went away.
func (s *Store) Prune(olderThan time.Duration, keep int) (int64, error) {
	var removed int64

	if olderThan > 0 {
		cutoff := time.Now().Add(-olderThan)
		res, err := s.db.Exec("DELETE FROM picks WHERE picked_at < ?", cutoff)
		if err != nil {
			return removed, fmt.Errorf("failed to prune by age: %w", err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}

	if keep > 0 {
		res, err := s.db.Exec(
			"DELETE FROM picks WHERE id NOT IN (SELECT id FROM picks ORDER BY id DESC LIMIT ?)",
			keep,
		)
		if err != nil {
			return removed, fmt.Errorf("failed to prune by count: %w", err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}

	return removed, nil
}
