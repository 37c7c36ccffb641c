package repositories

import (
	"context"

	"superlists/database"
	"superlists/gen/db"
)

// BaseRepository provides database access that can be embedded in all repositories.
type BaseRepository struct {
	db *database.Database
}

// NewBaseRepository creates a new BaseRepository with database access
func NewBaseRepository(database *database.Database) *BaseRepository {
	return &BaseRepository{
		db: database,
	}
}

// ReadQueries returns the read-optimized queries interface for SELECT operations
func (b *BaseRepository) ReadQueries() *db.Queries {
	return b.db.ReadQueries()
}

// WriteQueries returns the write-serialized queries interface for INSERT/UPDATE/DELETE operations
func (b *BaseRepository) WriteQueries() *db.Queries {
	return b.db.WriteQueries()
}

// WithTx executes a function within a write transaction
func (b *BaseRepository) WithTx(ctx context.Context, fn func(*db.Queries) error) error {
	return b.db.WithTx(ctx, fn)
}
