package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/money"
)

// SettingsService manages the business profile
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// SettingsDetail is the business profile in API shape
type SettingsDetail struct {
	BusinessName    string  `json:"business_name"`
	BusinessAddress string  `json:"business_address"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	Currency        string  `json:"currency"`
	DefaultTaxRate  float64 `json:"default_tax_rate"`
	ReceiptFooter   string  `json:"receipt_footer"`
}

// UpdateSettingsInput carries the partial update; nil fields are untouched
type UpdateSettingsInput struct {
	BusinessName    *string
	BusinessAddress *string
	Phone           *string
	Email           *string
	Currency        *string
	DefaultTaxRate  *float64
	ReceiptFooter   *string
}

// GetSettings returns the caller's business profile, creating a default one
// on first access.
func (s *SettingsService) GetSettings(ctx context.Context, ownerUserID uuid.UUID) (*SettingsDetail, error) {
	setting, err := s.getOrCreate(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	return settingsDetail(setting), nil
}

// UpdateSettings applies a partial update to the caller's business profile
func (s *SettingsService) UpdateSettings(ctx context.Context, ownerUserID uuid.UUID, input *UpdateSettingsInput) (*SettingsDetail, error) {
	setting, err := s.getOrCreate(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil {
		setting.BusinessName = *input.BusinessName
	}
	if input.BusinessAddress != nil {
		setting.BusinessAddress = *input.BusinessAddress
	}
	if input.Phone != nil {
		setting.Phone = *input.Phone
	}
	if input.Email != nil {
		setting.Email = *input.Email
	}
	if input.Currency != nil {
		setting.Currency = strings.ToUpper(*input.Currency)
	}
	if input.DefaultTaxRate != nil {
		setting.DefaultTaxRate = money.Percent(*input.DefaultTaxRate)
	}
	if input.ReceiptFooter != nil {
		setting.ReceiptFooter = *input.ReceiptFooter
	}

	if err := s.settingsRepo.Update(ctx, setting); err != nil {
		return nil, err
	}
	return settingsDetail(setting), nil
}

func (s *SettingsService) getOrCreate(ctx context.Context, ownerUserID uuid.UUID) (*entity.Setting, error) {
	setting, err := s.settingsRepo.GetByOwnerUserID(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	if setting != nil {
		return setting, nil
	}

	setting = &entity.Setting{
		OwnerUserID:   ownerUserID,
		BusinessName:  "My Business",
		Currency:      "USD",
		ReceiptFooter: "Thank you for your business.",
	}
	if err := s.settingsRepo.Create(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func settingsDetail(setting *entity.Setting) *SettingsDetail {
	rate, _ := setting.DefaultTaxRate.Float64()
	return &SettingsDetail{
		BusinessName:    setting.BusinessName,
		BusinessAddress: setting.BusinessAddress,
		Phone:           setting.Phone,
		Email:           setting.Email,
		Currency:        setting.Currency,
		DefaultTaxRate:  rate,
		ReceiptFooter:   setting.ReceiptFooter,
	}
}
