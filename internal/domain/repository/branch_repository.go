package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
)

// BranchRepository defines data access for branches.
// Lookup methods return (nil, nil) when no row matches.
type BranchRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	// FirstActive returns the default branch context when no branch is
	// specified: the earliest-created branch flagged active.
	FirstActive(ctx context.Context) (*entity.Branch, error)
	List(ctx context.Context) ([]entity.Branch, error)
	Create(ctx context.Context, branch *entity.Branch) error
	Update(ctx context.Context, branch *entity.Branch) error
}
