package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records a stock acquisition. PriceInPLN and CostPerUnitInPLN are
// derived from price, exchangeRate and initialQuantity at creation time and
// never taken from the caller. InitialQuantity is an immutable snapshot;
// CurrentQuantity starts equal to it and is reserved for consumption tracking.
type Purchase struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`

	PurchaseDate time.Time `gorm:"not null;index" json:"purchaseDate"`
	VendorName   *string   `gorm:"type:varchar(255)" json:"vendorName"`

	InitialQuantity float64 `gorm:"not null" json:"initialQuantity"`
	CurrentQuantity float64 `gorm:"not null" json:"currentQuantity"`

	Price            float64 `gorm:"not null" json:"price"`
	Currency         string  `gorm:"type:varchar(10);not null" json:"currency"`
	ExchangeRate     float64 `gorm:"not null" json:"exchangeRate"`
	PriceInPLN       float64 `gorm:"not null" json:"priceInPLN"`
	CostPerUnitInPLN float64 `gorm:"not null" json:"costPerUnitInPLN"`
}
