package commands

import (
	"context"

	"stayledger/internal/domain/client"
	"stayledger/internal/infra"
	"stayledger/internal/pkg/errs"
)

type RegisterClientInput struct {
	FirstName      string
	LastName       string
	PassportNumber string
	Phone          string
	Email          string
}

type ClientCommands interface {
	Register(ctx context.Context, input RegisterClientInput) (*client.Client, error)
}

type clientCommandsImpl struct {
	clients ClientRepository
}

func NewClientCommands(clients ClientRepository) ClientCommands {
	return &clientCommandsImpl{clients: clients}
}

func (c *clientCommandsImpl) Register(ctx context.Context, input RegisterClientInput) (*client.Client, error) {
	entity, err := client.NewClient(input.FirstName, input.LastName, input.PassportNumber, input.Phone, input.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	if _, err := c.clients.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicatePassport)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	return entity, nil
}
