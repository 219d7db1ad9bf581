package queries

import (
	"context"

	"stayledger/internal/domain/booking"
	"stayledger/internal/infra"
	"stayledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
	rooms    RoomReader
	clients  ClientReader
}

func NewBookingQueries(bookings BookingReader, rooms RoomReader, clients ClientReader) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, rooms: rooms, clients: clients}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	entity, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	view := q.assemble(ctx, entity)
	return &view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]BookingView, error) {
	entities, err := q.bookings.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	roomNumbers, clientNames, err := q.lookupTables(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(entities))
	for _, b := range entities {
		views = append(views, toBookingView(b, clientNames[b.ClientID()], roomNumbers[b.RoomID()]))
	}
	return views, nil
}

func (q *bookingQueriesImpl) assemble(ctx context.Context, b *booking.Booking) BookingView {
	var clientName, roomNumber string
	if c, err := q.clients.FindByID(ctx, b.ClientID()); err == nil {
		clientName = c.FullName()
	}
	if r, err := q.rooms.FindByID(ctx, b.RoomID()); err == nil {
		roomNumber = r.Number()
	}
	return toBookingView(b, clientName, roomNumber)
}

func (q *bookingQueriesImpl) lookupTables(ctx context.Context) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	rooms, err := q.rooms.List(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}
	clients, err := q.clients.List(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrRepositoryFailure)
	}

	roomNumbers := make(map[uuid.UUID]string, len(rooms))
	for _, r := range rooms {
		roomNumbers[r.ID()] = r.Number()
	}
	clientNames := make(map[uuid.UUID]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID()] = c.FullName()
	}
	return roomNumbers, clientNames, nil
}
