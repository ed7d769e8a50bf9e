package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
)

// SettingsRepository defines data access for the business profile.
// Lookup methods return (nil, nil) when no row matches.
type SettingsRepository interface {
	GetByOwnerUserID(ctx context.Context, ownerUserID uuid.UUID) (*entity.Setting, error)
	// First returns the oldest setting row; reports use it for the display
	// currency regardless of the requesting user.
	First(ctx context.Context) (*entity.Setting, error)
	Create(ctx context.Context, setting *entity.Setting) error
	Update(ctx context.Context, setting *entity.Setting) error
}
