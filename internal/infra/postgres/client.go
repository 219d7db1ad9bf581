package postgres

import (
	"context"
	"time"

	"stayledger/internal/domain/client"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `id, first_name, last_name, passport_number, phone, email, created_at`

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)

	entity, err := scanClient(row)
	if err != nil {
		return nil, wrapPgErr("failed to find client by ID", err)
	}
	return entity, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY last_name, first_name`)
	if err != nil {
		return nil, wrapPgErr("failed to list clients", err)
	}
	defer rows.Close()

	var result []*client.Client
	for rows.Next() {
		entity, scanErr := scanClient(rows)
		if scanErr != nil {
			return nil, wrapPgErr("failed to scan client row", scanErr)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate client rows", err)
	}
	return result, nil
}

func (r *ClientRepository) Create(ctx context.Context, entity *client.Client) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO clients (id, first_name, last_name, passport_number, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entity.ID(), entity.FirstName(), entity.LastName(), entity.PassportNumber(),
		entity.Phone(), entity.Email())
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create client", err)
	}
	return entity.ID(), nil
}

func scanClient(row pgx.Row) (*client.Client, error) {
	var id uuid.UUID
	var firstName, lastName, passport, phone, email string
	var createdAt time.Time
	if err := row.Scan(&id, &firstName, &lastName, &passport, &phone, &email, &createdAt); err != nil {
		return nil, err
	}
	return client.ReconstructClient(id, firstName, lastName, passport, phone, email, createdAt), nil
}
