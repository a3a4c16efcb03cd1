package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/standards-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS uploaded_tables (
	id         TEXT PRIMARY KEY,
	module     TEXT NOT NULL,
	name       TEXT NOT NULL,
	payload    TEXT NOT NULL,
	row_count  INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_uploaded_tables_module ON uploaded_tables(module);
`

// Migrate applies the schema.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveTable stores a table as a JSON payload and returns its id.
func (s *SQLiteStore) SaveTable(ctx context.Context, t *model.Table) (string, error) {
	id := uuid.New().String()

	payload, err := json.Marshal(t)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: marshal table")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO uploaded_tables (id, module, name, payload, row_count, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, t.Module, t.Name, string(payload), len(t.Rows), time.Now().UTC(),
	)
	if err != nil {
		return "", eris.Wrap(err, "sqlite: insert table")
	}

	return id, nil
}

// ListTables returns table metadata, optionally restricted to one module.
// Rows are ordered by insertion so the first contributing source stays the
// base source.
func (s *SQLiteStore) ListTables(ctx context.Context, module string) ([]TableInfo, error) {
	query := `SELECT id, module, name, row_count, created_at FROM uploaded_tables`
	args := []any{}
	if module != "" {
		query += ` WHERE module = ?`
		args = append(args, module)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list tables")
	}
	defer rows.Close()

	var infos []TableInfo
	for rows.Next() {
		var info TableInfo
		if err := rows.Scan(&info.ID, &info.Module, &info.Name, &info.RowCount, &info.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan table info")
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: rows iteration")
	}

	return infos, nil
}

// TablesForModule loads the full tables contributing to a module, in
// insertion order.
func (s *SQLiteStore) TablesForModule(ctx context.Context, module string) ([]*model.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM uploaded_tables WHERE module = ? ORDER BY created_at ASC`,
		module,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query tables for module")
	}
	defer rows.Close()

	var tables []*model.Table
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan payload")
		}
		var t model.Table
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal table")
		}
		tables = append(tables, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: rows iteration")
	}

	return tables, nil
}

// DeleteTable removes a stored table by id.
func (s *SQLiteStore) DeleteTable(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM uploaded_tables WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete table %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("sqlite: table %s not found", id)
	}
	return nil
}
