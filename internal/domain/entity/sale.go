package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
)

// Sale represents a completed point-of-sale transaction. Monetary columns
// are fixed-point numeric(12,2); TotalAmount always equals
// TotalBeforeTax + TaxAmount within rounding.
type Sale struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BranchID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	SaleTimestamp  time.Time       `gorm:"not null;index" json:"sale_timestamp"`
	Status         enum.SaleStatus `gorm:"type:varchar(16);not null;default:'COMPLETED';index" json:"status"`
	Currency       string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	CustomerName   *string         `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerEmail  *string         `gorm:"size:255" json:"customer_email,omitempty"`
	ReceiptNumber  string          `gorm:"size:64;uniqueIndex;not null" json:"receipt_number"`
	TotalBeforeTax decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_before_tax"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tax_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relationships
	Branch  Branch     `gorm:"foreignKey:BranchID" json:"-"`
	User    User       `gorm:"foreignKey:UserID" json:"-"`
	Items   []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Receipt *Receipt   `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID and sale timestamp before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SaleTimestamp.IsZero() {
		s.SaleTimestamp = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents a line item on a sale. Derived columns follow
// line_total_before_tax = unit_price * quantity,
// tax_amount = round(line_total_before_tax * tax_rate / 100),
// line_total = line_total_before_tax + tax_amount.
type SaleItem struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ItemID             *uuid.UUID      `gorm:"type:uuid" json:"item_id,omitempty"`
	Description        string          `gorm:"size:255;not null" json:"description"`
	Quantity           int             `gorm:"not null" json:"quantity"`
	UnitPrice          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TaxRate            decimal.Decimal `gorm:"type:numeric(6,3);not null" json:"tax_rate"`
	LineTotalBeforeTax decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total_before_tax"`
	TaxAmount          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tax_amount"`
	LineTotal          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total"`
	CreatedAt          time.Time       `json:"created_at"`

	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
