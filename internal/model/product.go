package model

type Product struct {
	BaseModel
	Name         string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU          *string `gorm:"type:varchar(50);uniqueIndex" json:"sku,omitempty"`
	CostPrice    float64 `gorm:"not null;default:0" json:"cost_price" validate:"gte=0"`
	SellingPrice float64 `gorm:"not null;default:0" json:"selling_price" validate:"gte=0"`
	StockQty     int     `gorm:"not null;default:0" json:"stock_qty" validate:"gte=0"`
	Unit         string  `gorm:"type:varchar(20)" json:"unit"`
	ImageURL     *string `json:"image_url,omitempty"`
	Category     *string `gorm:"type:varchar(100)" json:"category,omitempty"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`
}

// HasSKU reports whether the product carries a non-empty SKU/barcode.
func (p *Product) HasSKU() bool {
	return p.SKU != nil && *p.SKU != ""
}
