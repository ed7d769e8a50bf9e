package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	domainRepo "github.com/tillpoint/tillpoint-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByOwnerUserID(ctx context.Context, ownerUserID uuid.UUID) (*entity.Setting, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).First(&setting, "owner_user_id = ?", ownerUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &setting, err
}

func (r *settingsRepository) First(ctx context.Context) (*entity.Setting, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &setting, err
}

func (r *settingsRepository) Create(ctx context.Context, setting *entity.Setting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *settingsRepository) Update(ctx context.Context, setting *entity.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
