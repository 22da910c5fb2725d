package repository

import (
	"workshop-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.ProductCategory) error
	FindAll() ([]model.ProductCategory, error)
	FindByID(id uuid.UUID) (*model.ProductCategory, error)
	Update(category *model.ProductCategory) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.ProductCategory) error {
	return translate(r.db.Create(category).Error)
}

func (r *categoryRepo) FindAll() ([]model.ProductCategory, error) {
	categories := make([]model.ProductCategory, 0)
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, translate(err)
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.ProductCategory, error) {
	var category model.ProductCategory
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.ProductCategory) error {
	return translate(r.db.Save(category).Error)
}
