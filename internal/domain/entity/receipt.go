package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Receipt is the persisted placeholder created atomically with each sale.
// PdfURL stays nil until a rendered document is stored somewhere; the PDF
// endpoints always render on demand.
type Receipt struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"sale_id"`
	PdfURL    *string   `gorm:"size:500" json:"pdf_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}
