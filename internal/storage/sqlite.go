package storage

import (
	"context"
	"database/sql"
	"fmt"

	"csdoc/internal/generator"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ CatalogStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS items (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			namespace TEXT NOT NULL,
			slug TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS summaries (
			item_position INTEGER NOT NULL,
			ordinal INTEGER NOT NULL,
			html TEXT NOT NULL,
			PRIMARY KEY (item_position, ordinal)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_slug ON items(slug);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) SaveItems(ctx context.Context, items []generator.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Drop the previous snapshot
	for _, q := range []string{"DELETE FROM summaries", "DELETE FROM items"} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
	}

	// 2. Save items and their summaries
	itemStmt, err := tx.PrepareContext(ctx, `INSERT INTO items (position, title, namespace, slug) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer itemStmt.Close()

	sumStmt, err := tx.PrepareContext(ctx, `INSERT INTO summaries (item_position, ordinal, html) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer sumStmt.Close()

	for i, it := range items {
		if _, err := itemStmt.ExecContext(ctx, i, it.Title, it.Namespace, it.Slug); err != nil {
			return fmt.Errorf("failed to save item %s: %w", it.Title, err)
		}
		for j, html := range it.Summaries {
			if _, err := sumStmt.ExecContext(ctx, i, j, html); err != nil {
				return fmt.Errorf("failed to save summary of %s: %w", it.Title, err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadItems(ctx context.Context) ([]generator.Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT position, title, namespace, slug FROM items ORDER BY title, position")
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []generator.Item
	byPosition := make(map[int]int)
	for rows.Next() {
		var pos int
		var it generator.Item
		if err := rows.Scan(&pos, &it.Title, &it.Namespace, &it.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		byPosition[pos] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sumRows, err := s.db.QueryContext(ctx, "SELECT item_position, html FROM summaries ORDER BY item_position, ordinal")
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer sumRows.Close()

	for sumRows.Next() {
		var pos int
		var html string
		if err := sumRows.Scan(&pos, &html); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		if idx, ok := byPosition[pos]; ok {
			items[idx].Summaries = append(items[idx].Summaries, html)
		}
	}
	return items, sumRows.Err()
}
