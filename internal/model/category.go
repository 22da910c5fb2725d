package model

// ProductCategory groups products. The "filament" category (matched
// case-insensitively by name) triggers derived product naming.
type ProductCategory struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
