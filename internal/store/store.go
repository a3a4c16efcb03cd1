// Package store persists user-contributed tables between runs. The
// pipeline depends only on the repository interface; the storage medium is
// an implementation detail.
package store

import (
	"context"
	"time"

	"github.com/sells-group/standards-cli/internal/model"
)

// TableInfo summarizes a stored table without its rows.
type TableInfo struct {
	ID        string    `json:"id"`
	Module    string    `json:"module"`
	Name      string    `json:"name"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the persistence interface for uploaded tables.
type Store interface {
	SaveTable(ctx context.Context, t *model.Table) (string, error)
	ListTables(ctx context.Context, module string) ([]TableInfo, error)
	TablesForModule(ctx context.Context, module string) ([]*model.Table, error)
	DeleteTable(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
