package model

// Category is reference data for product classification
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
}
