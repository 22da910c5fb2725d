package repository

import (
	"workshop-backend/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll() ([]model.Client, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return translate(r.db.Create(client).Error)
}

func (r *clientRepo) FindAll() ([]model.Client, error) {
	clients := make([]model.Client, 0)
	err := r.db.Order("name ASC").Find(&clients).Error
	return clients, translate(err)
}
