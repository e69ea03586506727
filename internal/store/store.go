package store

import (
	"context"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/models"
)

// Store is the persistence boundary for job postings. Implementations must
// keep insertion atomic per record; listing relies on the store's native
// write ordering for a consistent createdAt sort.
type Store interface {
	Insert(ctx context.Context, job models.Job) error
	ListNewestFirst(ctx context.Context) ([]models.Job, error)
	Ping(ctx context.Context) error
}
