package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Unit string `gorm:"type:varchar(20)" json:"unit"`

	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category   ProductCategory `gorm:"foreignKey:CategoryID" json:"category"`

	// Filament attributes. Null when not applicable.
	Manufacturer *string  `gorm:"type:varchar(255)" json:"manufacturer"`
	MaterialType *string  `gorm:"type:varchar(255)" json:"materialType"`
	Color        *string  `gorm:"type:varchar(255)" json:"color"`
	Diameter     *float64 `json:"diameter"`
}
