package service

import (
	"time"

	"workshop-backend/internal/model"
	"workshop-backend/internal/repository"
	"workshop-backend/internal/ws"
	"workshop-backend/pkg/validator"

	"github.com/google/uuid"
)

type CreatePurchaseInput struct {
	ProductID       string        `json:"productId" validate:"required"`
	PurchaseDate    string        `json:"purchaseDate"`
	InitialQuantity model.Decimal `json:"initialQuantity"`
	Price           model.Decimal `json:"price"`
	Currency        string        `json:"currency"`
	ExchangeRate    model.Decimal `json:"exchangeRate"`
	VendorName      *string       `json:"vendorName"`
}

type PurchaseService interface {
	ListPurchases() ([]model.Purchase, error)
	CreatePurchase(in CreatePurchaseInput) (*model.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	hub          *ws.Hub
	now          func() time.Time
}

func NewPurchaseService(repo repository.PurchaseRepository, hub *ws.Hub) PurchaseService {
	return &purchaseService{
		purchaseRepo: repo,
		hub:          hub,
		now:          time.Now,
	}
}

func (s *purchaseService) ListPurchases() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *purchaseService) CreatePurchase(in CreatePurchaseInput) (*model.Purchase, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		return nil, &ValidationError{Message: "Product ID is required."}
	}

	productID, err := uuid.Parse(in.ProductID)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid product ID."}
	}

	if !isNumber(in.Price) || !isNumber(in.InitialQuantity) || !isNumber(in.ExchangeRate) ||
		in.InitialQuantity.Value <= 0 {
		return nil, &ValidationError{Message: "Invalid numeric data."}
	}

	purchaseDate := s.now()
	if in.PurchaseDate != "" {
		parsed, err := time.Parse(time.RFC3339, in.PurchaseDate)
		if err != nil {
			return nil, &ValidationError{Message: "Invalid date."}
		}
		purchaseDate = parsed
	}

	currency := in.Currency
	if currency == "" {
		currency = "PLN"
	}

	// Derived fields are always recomputed here; caller-supplied values for
	// priceInPLN or costPerUnitInPLN are never read.
	priceInPLN := in.Price.Value * in.ExchangeRate.Value
	costPerUnitInPLN := priceInPLN / in.InitialQuantity.Value

	purchase := &model.Purchase{
		ProductID:        productID,
		PurchaseDate:     purchaseDate,
		VendorName:       in.VendorName,
		InitialQuantity:  in.InitialQuantity.Value,
		CurrentQuantity:  in.InitialQuantity.Value,
		Price:            in.Price.Value,
		Currency:         currency,
		ExchangeRate:     in.ExchangeRate.Value,
		PriceInPLN:       priceInPLN,
		CostPerUnitInPLN: costPerUnitInPLN,
	}

	// No uniqueness constraint on purchases; any storage failure (including a
	// foreign key violation for an unknown product) is internal.
	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	s.hub.Publish("purchase_created", purchase)
	return purchase, nil
}

func isNumber(d model.Decimal) bool {
	return d.Set && d.Valid
}
