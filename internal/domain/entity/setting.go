package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Setting holds the business profile used on receipts and reports
type Setting struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerUserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_user_id"`
	BusinessName    string          `gorm:"size:255;not null" json:"business_name"`
	BusinessAddress string          `gorm:"size:500" json:"business_address"`
	Phone           string          `gorm:"size:50" json:"phone"`
	Email           string          `gorm:"size:255" json:"email"`
	Currency        string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	DefaultTaxRate  decimal.Decimal `gorm:"type:numeric(6,3);not null;default:0" json:"default_tax_rate"`
	ReceiptFooter   string          `gorm:"size:500" json:"receipt_footer"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new setting
func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
