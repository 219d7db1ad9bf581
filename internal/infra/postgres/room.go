package postgres

import (
	"context"
	"time"

	"stayledger/internal/domain/room"
	"stayledger/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const roomColumns = `id, room_number, room_type, nightly_rate_cents, capacity, description, lettable, created_at, updated_at`

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	entity, err := scanRoom(row)
	if err != nil {
		return nil, wrapPgErr("failed to find room by ID", err)
	}
	return entity, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, wrapPgErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*room.Room
	for rows.Next() {
		entity, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, wrapPgErr("failed to scan room row", scanErr)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate room rows", err)
	}
	return result, nil
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO rooms (id, room_number, room_type, nightly_rate_cents, capacity, description, lettable)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entity.ID(), entity.Number(), entity.RoomType(), entity.NightlyRateCents(),
		entity.Capacity(), entity.Description(), entity.Lettable())
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create room", err)
	}
	return entity.ID(), nil
}

func (r *RoomRepository) SetLettable(ctx context.Context, id uuid.UUID, lettable bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE rooms SET lettable = $2, updated_at = now() WHERE id = $1`, id, lettable)
	if err != nil {
		return wrapPgErr("failed to update room lettable flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id                   uuid.UUID
		number, roomType     string
		nightlyRateCents     int64
		capacity             int
		description          string
		lettable             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &number, &roomType, &nightlyRateCents, &capacity, &description, &lettable, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return room.ReconstructRoom(id, number, roomType, nightlyRateCents, capacity, description, lettable, createdAt, updatedAt), nil
}
