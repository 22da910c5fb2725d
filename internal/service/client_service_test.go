package service_test

import (
	"testing"

	"workshop-backend/internal/repository"
	"workshop-backend/internal/service"
	"workshop-backend/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClient(t *testing.T) {
	repo := &stubClientRepo{}
	svc := service.NewClientService(repo, ws.NewHub())

	client, err := svc.CreateClient(service.CreateClientInput{
		Name:  "PrintLab",
		NIP:   strptr("1234567890"),
		Email: strptr("orders@printlab.test"),
	})
	require.NoError(t, err)
	assert.Equal(t, "PrintLab", client.Name)
	assert.Equal(t, "1234567890", *client.NIP)
	assert.Nil(t, client.Phone)
	require.Len(t, repo.created, 1)
}

func TestCreateClientConflict(t *testing.T) {
	repo := &stubClientRepo{createErr: repository.ErrConflict}
	svc := service.NewClientService(repo, ws.NewHub())

	_, err := svc.CreateClient(service.CreateClientInput{Name: "PrintLab"})

	var conflict *service.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, `Client named "PrintLab" already exists.`, conflict.Message)
}

func TestCreateClientMissingName(t *testing.T) {
	svc := service.NewClientService(&stubClientRepo{}, ws.NewHub())

	_, err := svc.CreateClient(service.CreateClientInput{})

	var invalid *service.ValidationError
	assert.ErrorAs(t, err, &invalid)
}
