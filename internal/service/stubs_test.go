package service_test

import (
	"workshop-backend/internal/model"
	"workshop-backend/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository stubs, pre-seeded per test.

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.ProductCategory
	createErr  error
	updateErr  error
	created    []*model.ProductCategory
}

func (s *stubCategoryRepo) Create(c *model.ProductCategory) error {
	if s.createErr != nil {
		return s.createErr
	}
	c.ID = uuid.New()
	s.created = append(s.created, c)
	return nil
}

func (s *stubCategoryRepo) FindAll() ([]model.ProductCategory, error) {
	var out []model.ProductCategory
	for _, c := range s.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubCategoryRepo) FindByID(id uuid.UUID) (*model.ProductCategory, error) {
	if c, ok := s.categories[id]; ok {
		found := *c
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubCategoryRepo) Update(c *model.ProductCategory) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.categories[c.ID] = c
	return nil
}

type stubProductRepo struct {
	createErr error
	created   []*model.Product
}

func (s *stubProductRepo) Create(p *model.Product) error {
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = uuid.New()
	s.created = append(s.created, p)
	return nil
}

func (s *stubProductRepo) FindAll() ([]model.Product, error) {
	var out []model.Product
	for _, p := range s.created {
		out = append(out, *p)
	}
	return out, nil
}

type stubPurchaseRepo struct {
	createErr error
	created   []*model.Purchase
}

func (s *stubPurchaseRepo) Create(p *model.Purchase) error {
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = uuid.New()
	s.created = append(s.created, p)
	return nil
}

func (s *stubPurchaseRepo) FindAll() ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range s.created {
		out = append(out, *p)
	}
	return out, nil
}

type stubClientRepo struct {
	createErr error
	created   []*model.Client
}

func (s *stubClientRepo) Create(c *model.Client) error {
	if s.createErr != nil {
		return s.createErr
	}
	c.ID = uuid.New()
	s.created = append(s.created, c)
	return nil
}

func (s *stubClientRepo) FindAll() ([]model.Client, error) {
	var out []model.Client
	for _, c := range s.created {
		out = append(out, *c)
	}
	return out, nil
}
