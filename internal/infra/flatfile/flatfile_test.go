//go:build unit

package flatfile_test

import (
	"context"
	"testing"
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/domain/client"
	"stayledger/internal/domain/room"
	"stayledger/internal/infra"
	"stayledger/internal/infra/flatfile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *flatfile.Store {
	t.Helper()
	store, err := flatfile.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRoomRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		repo := flatfile.NewRoomRepository(newStore(t))

		entity, err := room.NewRoom("101", "standard", 250000, 2, "single bed")
		require.NoError(t, err)

		id, err := repo.Create(ctx, entity)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "101", got.Number())
		assert.Equal(t, int64(250000), got.NightlyRateCents())
		assert.True(t, got.Lettable())
	})

	t.Run("duplicate room number rejected", func(t *testing.T) {
		repo := flatfile.NewRoomRepository(newStore(t))

		first, err := room.NewRoom("101", "standard", 250000, 2, "")
		require.NoError(t, err)
		_, err = repo.Create(ctx, first)
		require.NoError(t, err)

		second, err := room.NewRoom("101", "lux", 500000, 2, "")
		require.NoError(t, err)
		_, err = repo.Create(ctx, second)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("withdraw persists", func(t *testing.T) {
		store := newStore(t)
		repo := flatfile.NewRoomRepository(store)

		entity, err := room.NewRoom("201", "lux", 500000, 2, "")
		require.NoError(t, err)
		id, err := repo.Create(ctx, entity)
		require.NoError(t, err)

		require.NoError(t, repo.SetLettable(ctx, id, false))

		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, got.Lettable())
	})

	t.Run("unknown room", func(t *testing.T) {
		repo := flatfile.NewRoomRepository(newStore(t))
		_, err := repo.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		err = repo.SetLettable(ctx, uuid.New(), false)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestClientRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and list", func(t *testing.T) {
		repo := flatfile.NewClientRepository(newStore(t))

		entity, err := client.NewClient("Ivan", "Ivanov", "1234567890", "+79101234567", "ivan@example.com")
		require.NoError(t, err)
		_, err = repo.Create(ctx, entity)
		require.NoError(t, err)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Ivan Ivanov", all[0].FullName())
	})

	t.Run("duplicate passport rejected", func(t *testing.T) {
		repo := flatfile.NewClientRepository(newStore(t))

		first, err := client.NewClient("Ivan", "Ivanov", "1234567890", "", "")
		require.NoError(t, err)
		_, err = repo.Create(ctx, first)
		require.NoError(t, err)

		second, err := client.NewClient("Petr", "Petrov", "1234567890", "", "")
		require.NoError(t, err)
		_, err = repo.Create(ctx, second)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()

	insert := func(t *testing.T, repo *flatfile.BookingRepository, roomID uuid.UUID, in, out time.Time) *booking.Booking {
		t.Helper()
		stay, err := booking.NewStayRange(in, out)
		require.NoError(t, err)
		b, err := booking.NewBooking(uuid.New(), roomID, stay, 2500)
		require.NoError(t, err)
		_, err = repo.Insert(ctx, b)
		require.NoError(t, err)
		return b
	}

	t.Run("insert and read back", func(t *testing.T) {
		repo := flatfile.NewBookingRepository(newStore(t))
		roomID := uuid.New()

		b := insert(t, repo, roomID, date(2024, 1, 1), date(2024, 1, 5))

		got, err := repo.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, b.Stay().CheckIn(), got.Stay().CheckIn())
		assert.Equal(t, b.Stay().CheckOut(), got.Stay().CheckOut())
		assert.Equal(t, int64(10000), got.TotalPrice().Cents())
		assert.Equal(t, booking.StatusConfirmed, got.Status())
	})

	t.Run("confirmed listing excludes terminal bookings", func(t *testing.T) {
		repo := flatfile.NewBookingRepository(newStore(t))
		roomID := uuid.New()

		b1 := insert(t, repo, roomID, date(2024, 1, 1), date(2024, 1, 5))
		insert(t, repo, roomID, date(2024, 1, 5), date(2024, 1, 10))
		insert(t, repo, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))

		require.NoError(t, repo.UpdateStatus(ctx, b1.ID(), booking.StatusCancelled))

		confirmed, err := repo.ListConfirmedByRoom(ctx, roomID)
		require.NoError(t, err)
		assert.Len(t, confirmed, 1)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("terminal row stays terminal", func(t *testing.T) {
		repo := flatfile.NewBookingRepository(newStore(t))
		b := insert(t, repo, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))

		require.NoError(t, repo.UpdateStatus(ctx, b.ID(), booking.StatusCancelled))

		err := repo.UpdateStatus(ctx, b.ID(), booking.StatusCompleted)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := flatfile.NewBookingRepository(newStore(t))
		err := repo.UpdateStatus(ctx, uuid.New(), booking.StatusCancelled)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
