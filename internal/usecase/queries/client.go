package queries

import (
	"context"

	"stayledger/internal/infra"
	"stayledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type ClientQueries interface {
	List(ctx context.Context) ([]ClientView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
}

type clientQueriesImpl struct {
	clients ClientReader
}

func NewClientQueries(clients ClientReader) ClientQueries {
	return &clientQueriesImpl{clients: clients}
}

func (q *clientQueriesImpl) List(ctx context.Context) ([]ClientView, error) {
	entities, err := q.clients.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	views := make([]ClientView, 0, len(entities))
	for _, c := range entities {
		views = append(views, toClientView(c))
	}
	return views, nil
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	entity, err := q.clients.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	view := toClientView(entity)
	return &view, nil
}
