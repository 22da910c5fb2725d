package repository

import (
	"workshop-backend/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(purchase *model.Purchase) error
	FindAll() ([]model.Purchase, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(purchase *model.Purchase) error {
	return translate(r.db.Create(purchase).Error)
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	purchases := make([]model.Purchase, 0)
	err := r.db.Preload("Product").Order("purchase_date ASC").Find(&purchases).Error
	return purchases, translate(err)
}
