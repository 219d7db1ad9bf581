package flatfile

import (
	"context"
	"time"

	"stayledger/internal/domain/client"
	"stayledger/internal/infra"

	"github.com/google/uuid"
)

type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows, err := r.store.readTable(clientsFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[0] == id.String() {
			return decodeClient(row)
		}
	}
	return nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows, err := r.store.readTable(clientsFile)
	if err != nil {
		return nil, err
	}
	result := make([]*client.Client, 0, len(rows))
	for _, row := range rows {
		entity, decErr := decodeClient(row)
		if decErr != nil {
			return nil, decErr
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *ClientRepository) Create(ctx context.Context, entity *client.Client) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.readTable(clientsFile)
	if err != nil {
		return uuid.Nil, err
	}
	for _, row := range rows {
		if row[3] == entity.PassportNumber() {
			return uuid.Nil, infra.WrapRepoErr("passport number already exists", nil, infra.KindDuplicateKey)
		}
	}

	row := []string{
		entity.ID().String(),
		entity.FirstName(),
		entity.LastName(),
		entity.PassportNumber(),
		entity.Phone(),
		entity.Email(),
		r.store.now().Format(time.RFC3339),
	}
	if err := r.store.appendRow(clientsFile, row); err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func decodeClient(row []string) (*client.Client, error) {
	if len(row) != len(tableHeaders[clientsFile]) {
		return nil, infra.WrapRepoErr("malformed client row", nil)
	}

	id, err := uuid.Parse(row[0])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed client id", err)
	}
	createdAt, _ := time.Parse(time.RFC3339, row[6])

	return client.ReconstructClient(id, row[1], row[2], row[3], row[4], row[5], createdAt), nil
}
