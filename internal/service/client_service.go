package service

import (
	"errors"
	"fmt"

	"workshop-backend/internal/model"
	"workshop-backend/internal/repository"
	"workshop-backend/internal/ws"
	"workshop-backend/pkg/validator"
)

type CreateClientInput struct {
	Name    string  `json:"name" validate:"required"`
	NIP     *string `json:"nip"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Notes   *string `json:"notes"`
}

type ClientService interface {
	ListClients() ([]model.Client, error)
	CreateClient(in CreateClientInput) (*model.Client, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
	hub        *ws.Hub
}

func NewClientService(repo repository.ClientRepository, hub *ws.Hub) ClientService {
	return &clientService{clientRepo: repo, hub: hub}
}

func (s *clientService) ListClients() ([]model.Client, error) {
	return s.clientRepo.FindAll()
}

func (s *clientService) CreateClient(in CreateClientInput) (*model.Client, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		return nil, &ValidationError{Message: "Client name is required."}
	}

	client := &model.Client{
		Name:    in.Name,
		NIP:     in.NIP,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
		Notes:   in.Notes,
	}

	if err := s.clientRepo.Create(client); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, &ConflictError{Message: fmt.Sprintf("Client named %q already exists.", in.Name)}
		}
		return nil, err
	}

	s.hub.Publish("client_created", client)
	return client, nil
}
