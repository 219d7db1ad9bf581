package postgres

import (
	"context"
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/infra"
	"stayledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, client_id, room_id, check_in, check_out, total_price_cents, status, created_at, updated_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	entity, err := scanBooking(row)
	if err != nil {
		return nil, wrapPgErr("failed to find booking by ID", err)
	}
	return entity, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	return r.queryBookings(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY check_in, created_at`)
}

// ListConfirmed returns every booking that currently counts toward occupancy.
func (r *BookingRepository) ListConfirmed(ctx context.Context) ([]*booking.Booking, error) {
	return r.queryBookings(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE status = 'confirmed' ORDER BY check_in`)
}

func (r *BookingRepository) ListConfirmedByRoom(ctx context.Context, roomID uuid.UUID) ([]*booking.Booking, error) {
	return r.queryBookings(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE room_id = $1 AND status = 'confirmed' ORDER BY check_in`,
		roomID)
}

func (r *BookingRepository) Insert(ctx context.Context, entity *booking.Booking) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bookings (id, client_id, room_id, check_in, check_out, total_price_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entity.ID(), entity.ClientID(), entity.RoomID(),
		entity.Stay().CheckIn(), entity.Stay().CheckOut(),
		entity.TotalPrice().Cents(), entity.Status().String())
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to insert booking", err)
	}
	return entity.ID(), nil
}

// UpdateStatus moves a Confirmed booking into a terminal status. The WHERE
// guard keeps terminal rows terminal even if a caller raced past the entity
// check; zero rows updated surfaces as a conflict.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1 AND status = 'confirmed'`,
		id, status.String())
	if err != nil {
		return wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		if exists, existsErr := r.exists(ctx, id); existsErr == nil && !exists {
			return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("booking already terminal", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&found)
	return found, err
}

func (r *BookingRepository) queryBookings(ctx context.Context, sql string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgErr("failed to query bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		entity, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, wrapPgErr("failed to scan booking row", scanErr)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, clientID, roomID uuid.UUID
		checkIn, checkOut    time.Time
		totalPriceCents      int64
		status               string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &clientID, &roomID, &checkIn, &checkOut, &totalPriceCents, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has malformed stay range")
	}

	return booking.ReconstructBooking(
		id, clientID, roomID,
		stay,
		booking.NewMoney(totalPriceCents),
		booking.Status(status),
		createdAt, updatedAt,
	), nil
}
