//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/domain/client"
	"stayledger/internal/domain/room"
	"stayledger/internal/infra"
	"stayledger/internal/infra/rediscache"
	"stayledger/internal/pkg/errs"
	"stayledger/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memReaders struct {
	rooms    []*room.Room
	clients  []*client.Client
	bookings []*booking.Booking
}

func (m *memReaders) roomByID(id uuid.UUID) (*room.Room, error) {
	for _, r := range m.rooms {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

type memRoomReader struct{ m *memReaders }

func (r memRoomReader) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	return r.m.roomByID(id)
}

func (r memRoomReader) List(context.Context) ([]*room.Room, error) {
	return r.m.rooms, nil
}

type memClientReader struct{ m *memReaders }

func (r memClientReader) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	for _, c := range r.m.clients {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
}

func (r memClientReader) List(context.Context) ([]*client.Client, error) {
	return r.m.clients, nil
}

type memBookingReader struct{ m *memReaders }

func (r memBookingReader) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	for _, b := range r.m.bookings {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r memBookingReader) List(context.Context) ([]*booking.Booking, error) {
	return r.m.bookings, nil
}

func (r memBookingReader) ListConfirmed(context.Context) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.m.bookings {
		if b.IsConfirmed() {
			out = append(out, b)
		}
	}
	return out, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T) *memReaders {
	t.Helper()

	r1, err := room.NewRoom("101", "standard", 2500, 2, "")
	require.NoError(t, err)
	r2, err := room.NewRoom("201", "suite", 5000, 4, "")
	require.NoError(t, err)

	c1, err := client.NewClient("Anna", "Petrova", "4455667788", "", "")
	require.NoError(t, err)

	stay, err := booking.NewStayRange(date(2024, 2, 1), date(2024, 2, 4))
	require.NoError(t, err)
	b1, err := booking.NewBooking(c1.ID(), r1.ID(), stay, r1.NightlyRateCents())
	require.NoError(t, err)

	return &memReaders{
		rooms:    []*room.Room{r1, r2},
		clients:  []*client.Client{c1},
		bookings: []*booking.Booking{b1},
	}
}

func testCache(t *testing.T) *rediscache.AvailabilityCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return rediscache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
}

func TestRoomQueriesAvailable(t *testing.T) {
	ctx := context.Background()
	m := seed(t)
	q := queries.NewRoomQueries(memRoomReader{m}, memBookingReader{m}, testCache(t))

	t.Run("occupied room excluded", func(t *testing.T) {
		views, err := q.Available(ctx, date(2024, 2, 2), date(2024, 2, 3))
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "201", views[0].Number)
	})

	t.Run("free range returns both rooms", func(t *testing.T) {
		views, err := q.Available(ctx, date(2024, 2, 10), date(2024, 2, 12))
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("repeated search served from cache", func(t *testing.T) {
		first, err := q.Available(ctx, date(2024, 2, 10), date(2024, 2, 12))
		require.NoError(t, err)
		second, err := q.Available(ctx, date(2024, 2, 10), date(2024, 2, 12))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("malformed range", func(t *testing.T) {
		_, err := q.Available(ctx, date(2024, 2, 12), date(2024, 2, 10))
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})
}

func TestRoomQueriesAvailableWithoutRedis(t *testing.T) {
	ctx := context.Background()
	m := seed(t)
	q := queries.NewRoomQueries(memRoomReader{m}, memBookingReader{m}, rediscache.NewNoop())

	views, err := q.Available(ctx, date(2024, 2, 2), date(2024, 2, 3))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "201", views[0].Number)
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	m := seed(t)
	q := queries.NewBookingQueries(memBookingReader{m}, memRoomReader{m}, memClientReader{m})

	t.Run("get by id joins names", func(t *testing.T) {
		view, err := q.GetByID(ctx, m.bookings[0].ID())
		require.NoError(t, err)
		assert.Equal(t, "Anna Petrova", view.ClientName)
		assert.Equal(t, "101", view.RoomNumber)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, int64(7500), view.TotalCents)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("list resolves lookup tables", func(t *testing.T) {
		views, err := q.List(ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Anna Petrova", views[0].ClientName)
	})
}

func TestClientQueries(t *testing.T) {
	ctx := context.Background()
	m := seed(t)
	q := queries.NewClientQueries(memClientReader{m})

	views, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "4455667788", views[0].PassportNumber)

	_, err = q.GetByID(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrClientNotFound))
}
