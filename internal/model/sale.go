package model

import "github.com/google/uuid"

const (
	SaleStatusCompleted = "completed"
	PaymentPromptPay    = "promptpay"
)

// Sale is a completed transaction header. It is immutable after checkout.
type Sale struct {
	BaseModel
	TotalAmount   float64    `gorm:"not null" json:"total_amount"`
	Status        string     `gorm:"type:varchar(20);not null" json:"status"`
	PaymentMethod string     `gorm:"type:varchar(20);not null" json:"payment_method"`
	Items         []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// ShortID returns the first 8 characters of the sale id, the form shown
// on receipts and in the export.
func (s *Sale) ShortID() string {
	return s.ID.String()[:8]
}

// SaleItem is one line of a sale. PriceAtSale snapshots the product's
// selling price at checkout time so later price edits do not rewrite
// historical revenue.
type SaleItem struct {
	BaseModel
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product     *Product  `json:"product,omitempty" validate:"-"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	PriceAtSale float64   `gorm:"not null" json:"price_at_sale"`
	Total       float64   `gorm:"not null" json:"total"` // PriceAtSale * Quantity
}
