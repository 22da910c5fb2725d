package service

import (
	"errors"
	"fmt"
	"strings"

	"workshop-backend/internal/model"
	"workshop-backend/internal/repository"
	"workshop-backend/internal/ws"
	"workshop-backend/pkg/validator"

	"github.com/google/uuid"
)

// CreateProductInput is the create-product request body. Name and unit may be
// overridden by the filament naming rule, so they carry no validation tags.
type CreateProductInput struct {
	CategoryID   string        `json:"categoryId" validate:"required"`
	Name         string        `json:"name"`
	Unit         string        `json:"unit"`
	Manufacturer *string       `json:"manufacturer"`
	MaterialType *string       `json:"materialType"`
	Color        *string       `json:"color"`
	Diameter     model.Decimal `json:"diameter"`
}

type CatalogService interface {
	ListCategories() ([]model.ProductCategory, error)
	CreateCategory(name string) (*model.ProductCategory, error)
	UpdateCategory(id uuid.UUID, name string) (*model.ProductCategory, error)
	ListProducts() ([]model.Product, error)
	CreateProduct(in CreateProductInput) (*model.Product, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	hub          *ws.Hub
}

func NewCatalogService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		hub:          hub,
	}
}

func (s *catalogService) ListCategories() ([]model.ProductCategory, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) CreateCategory(name string) (*model.ProductCategory, error) {
	category := &model.ProductCategory{Name: name}
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return nil, &ValidationError{Message: "Category name is required."}
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, &ConflictError{Message: fmt.Sprintf("Category named %q already exists.", name)}
		}
		return nil, err
	}

	s.hub.Publish("category_created", category)
	return category, nil
}

func (s *catalogService) UpdateCategory(id uuid.UUID, name string) (*model.ProductCategory, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "Category not found."}
		}
		return nil, err
	}

	category.Name = name
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return nil, &ValidationError{Message: "Category name is required."}
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, &ConflictError{Message: fmt.Sprintf("Category named %q already exists.", name)}
		}
		return nil, err
	}

	s.hub.Publish("category_updated", category)
	return category, nil
}

func (s *catalogService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) CreateProduct(in CreateProductInput) (*model.Product, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		return nil, &ValidationError{Message: "Category ID is required."}
	}

	categoryID, err := uuid.Parse(in.CategoryID)
	if err != nil {
		return nil, &NotFoundError{Message: "Category not found."}
	}

	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "Category not found."}
		}
		return nil, err
	}

	name := in.Name
	unit := in.Unit

	// Filament products are named from their attributes; the caller-supplied
	// name and unit are ignored. An all-empty attribute set derives the empty
	// name, which is valid (uniqueness still applies).
	if strings.ToLower(category.Name) == "filament" {
		name = strings.TrimSpace(fmt.Sprintf("%s %s %s",
			stringOrEmpty(in.Manufacturer),
			stringOrEmpty(in.MaterialType),
			stringOrEmpty(in.Color),
		))
		unit = "g"
	}

	var diameter *float64
	if in.Diameter.Set && in.Diameter.Valid {
		d := in.Diameter.Value
		diameter = &d
	}

	product := &model.Product{
		Name:         name,
		Unit:         unit,
		CategoryID:   categoryID,
		Manufacturer: in.Manufacturer,
		MaterialType: in.MaterialType,
		Color:        in.Color,
		Diameter:     diameter,
	}

	if err := s.productRepo.Create(product); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			// The message names the final computed name, not the caller input.
			return nil, &ConflictError{Message: fmt.Sprintf("Product named %q already exists.", name)}
		}
		return nil, err
	}

	product.Category = *category
	s.hub.Publish("product_created", product)
	return product, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
