package flatfile

import (
	"context"
	"strconv"
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows, err := r.store.readTable(bookingsFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[0] == id.String() {
			return decodeBooking(row)
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *BookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	return r.listFiltered(func(*booking.Booking) bool { return true })
}

func (r *BookingRepository) ListConfirmed(ctx context.Context) ([]*booking.Booking, error) {
	return r.listFiltered(func(b *booking.Booking) bool { return b.IsConfirmed() })
}

func (r *BookingRepository) ListConfirmedByRoom(ctx context.Context, roomID uuid.UUID) ([]*booking.Booking, error) {
	return r.listFiltered(func(b *booking.Booking) bool {
		return b.IsConfirmed() && b.RoomID() == roomID
	})
}

func (r *BookingRepository) Insert(ctx context.Context, entity *booking.Booking) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now().Format(time.RFC3339)
	row := []string{
		entity.ID().String(),
		entity.ClientID().String(),
		entity.RoomID().String(),
		entity.Stay().CheckIn().Format(time.DateOnly),
		entity.Stay().CheckOut().Format(time.DateOnly),
		strconv.FormatInt(entity.TotalPrice().Cents(), 10),
		entity.Status().String(),
		now,
		now,
	}
	if err := r.store.appendRow(bookingsFile, row); err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.readTable(bookingsFile)
	if err != nil {
		return err
	}

	found := false
	for _, row := range rows {
		if row[0] != id.String() {
			continue
		}
		found = true
		// Terminal rows stay terminal regardless of what the caller believed.
		if booking.Status(row[6]).IsTerminal() {
			return infra.WrapRepoErr("booking already terminal", nil, infra.KindConflict)
		}
		row[6] = status.String()
		row[8] = r.store.now().Format(time.RFC3339)
	}
	if !found {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return r.store.rewriteTable(bookingsFile, rows)
}

func (r *BookingRepository) listFiltered(keep func(*booking.Booking) bool) ([]*booking.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows, err := r.store.readTable(bookingsFile)
	if err != nil {
		return nil, err
	}
	var result []*booking.Booking
	for _, row := range rows {
		entity, decErr := decodeBooking(row)
		if decErr != nil {
			return nil, decErr
		}
		if keep(entity) {
			result = append(result, entity)
		}
	}
	return result, nil
}

func decodeBooking(row []string) (*booking.Booking, error) {
	if len(row) != len(tableHeaders[bookingsFile]) {
		return nil, infra.WrapRepoErr("malformed booking row", nil)
	}

	id, err := uuid.Parse(row[0])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking id", err)
	}
	clientID, err := uuid.Parse(row[1])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed client id", err)
	}
	roomID, err := uuid.Parse(row[2])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed room id", err)
	}
	checkIn, err := time.Parse(time.DateOnly, row[3])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed check-in date", err)
	}
	checkOut, err := time.Parse(time.DateOnly, row[4])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed check-out date", err)
	}
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has malformed stay range", err)
	}
	priceCents, err := strconv.ParseInt(row[5], 10, 64)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed total price", err)
	}
	createdAt, _ := time.Parse(time.RFC3339, row[7])
	updatedAt, _ := time.Parse(time.RFC3339, row[8])

	return booking.ReconstructBooking(
		id, clientID, roomID,
		stay,
		booking.NewMoney(priceCents),
		booking.Status(row[6]),
		createdAt, updatedAt,
	), nil
}
