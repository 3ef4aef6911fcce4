package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"examprep/internal/modules/cache/domain"
	cacheout "examprep/internal/modules/cache/port/out"
)

// SQLiteStorage keeps namespaces in the application database. Deleting a
// namespace removes its entries through the foreign key cascade.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(ctx context.Context, db *sql.DB) (*SQLiteStorage, error) {
	s := &SQLiteStorage{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) ensureSchema(ctx context.Context) error {
	const ddl = `
PRAGMA foreign_keys = ON;
CREATE TABLE IF NOT EXISTS cache_namespaces (
  name TEXT PRIMARY KEY,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS cache_entries (
  namespace TEXT NOT NULL REFERENCES cache_namespaces(name) ON DELETE CASCADE,
  key TEXT NOT NULL,
  status INTEGER NOT NULL,
  header TEXT NOT NULL,
  body BLOB,
  stored_at TEXT NOT NULL,
  PRIMARY KEY (namespace, key)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create cache tables: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Open(ctx context.Context, name string) (cacheout.Cache, error) {
	const stmt = `INSERT INTO cache_namespaces (name, created_at) VALUES (?, ?) ON CONFLICT(name) DO NOTHING;`
	if _, err := s.db.ExecContext(ctx, stmt, name, now()); err != nil {
		return nil, fmt.Errorf("open namespace %s: %w", name, err)
	}
	return &sqliteCache{db: s.db, name: name}, nil
}

func (s *SQLiteStorage) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM cache_namespaces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			_ = cerr
		}
	}()
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan namespace: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLiteStorage) Delete(ctx context.Context, name string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete %s: %w", name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM cache_entries WHERE namespace = ?`, name); err != nil {
		return false, fmt.Errorf("delete entries of %s: %w", name, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM cache_namespaces WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("delete namespace %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete namespace %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete %s: %w", name, err)
	}
	return n > 0, nil
}

type sqliteCache struct {
	db   *sql.DB
	name string
}

func (c *sqliteCache) Match(ctx context.Context, key string) (domain.Response, bool, error) {
	var (
		status int
		header string
		body   []byte
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT status, header, body FROM cache_entries WHERE namespace = ? AND key = ?`,
		c.name, key).Scan(&status, &header, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Response{}, false, nil
	}
	if err != nil {
		return domain.Response{}, false, fmt.Errorf("match %s in %s: %w", key, c.name, err)
	}
	h := http.Header{}
	if err := json.Unmarshal([]byte(header), &h); err != nil {
		return domain.Response{}, false, fmt.Errorf("decode header of %s: %w", key, err)
	}
	return domain.Response{Status: status, Header: h, Body: body}, true, nil
}

func (c *sqliteCache) Put(ctx context.Context, key string, resp domain.Response) error {
	header, err := json.Marshal(resp.Header)
	if err != nil {
		return fmt.Errorf("encode header of %s: %w", key, err)
	}
	const stmt = `
INSERT INTO cache_entries (namespace, key, status, header, body, stored_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(namespace, key) DO UPDATE SET
  status=excluded.status,
  header=excluded.header,
  body=excluded.body,
  stored_at=excluded.stored_at;
`
	if _, err := c.db.ExecContext(ctx, stmt, c.name, key, resp.Status, string(header), resp.Body, now()); err != nil {
		return fmt.Errorf("put %s in %s: %w", key, c.name, err)
	}
	return nil
}

func (c *sqliteCache) Keys(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT key FROM cache_entries WHERE namespace = ? ORDER BY key`, c.name)
	if err != nil {
		return nil, fmt.Errorf("list keys of %s: %w", c.name, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			_ = cerr
		}
	}()
	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
