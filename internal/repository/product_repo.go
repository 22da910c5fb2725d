package repository

import (
	"workshop-backend/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return translate(r.db.Create(product).Error)
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.Preload("Category").Order("name ASC").Find(&products).Error
	return products, translate(err)
}
