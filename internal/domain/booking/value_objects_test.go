//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayledger/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, in, out time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(in, out)
	require.NoError(t, err)
	return stay
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2024, 1, 1), date(2024, 1, 5))
		require.NoError(t, err)
		assert.Equal(t, date(2024, 1, 1), stay.CheckIn())
		assert.Equal(t, date(2024, 1, 5), stay.CheckOut())
		assert.Equal(t, 4, stay.Nights())
	})

	t.Run("check-out equal to check-in", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2024, 1, 1), date(2024, 1, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2024, 1, 5), date(2024, 1, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		in := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
		out := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
		stay, err := booking.NewStayRange(in, out)
		require.NoError(t, err)
		assert.Equal(t, date(2024, 3, 1), stay.CheckIn())
		assert.Equal(t, 3, stay.Nights())
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	base := func(t *testing.T) booking.StayRange {
		return mustStay(t, date(2024, 1, 10), date(2024, 1, 15))
	}

	cases := []struct {
		name    string
		in, out time.Time
		want    bool
	}{
		{"identical range", date(2024, 1, 10), date(2024, 1, 15), true},
		{"contained within", date(2024, 1, 11), date(2024, 1, 13), true},
		{"straddles start", date(2024, 1, 8), date(2024, 1, 11), true},
		{"straddles end", date(2024, 1, 14), date(2024, 1, 20), true},
		{"covers entirely", date(2024, 1, 1), date(2024, 1, 31), true},
		{"abuts start", date(2024, 1, 5), date(2024, 1, 10), false},
		{"abuts end", date(2024, 1, 15), date(2024, 1, 20), false},
		{"disjoint before", date(2024, 1, 1), date(2024, 1, 5), false},
		{"disjoint after", date(2024, 1, 20), date(2024, 1, 25), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustStay(t, tc.in, tc.out)
			assert.Equal(t, tc.want, base(t).Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(base(t)), "predicate must be symmetric")
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("times nights", func(t *testing.T) {
		total := booking.NewMoney(2500).Times(3)
		assert.Equal(t, int64(7500), total.Cents())
	})

	t.Run("negative rejected by checked constructor", func(t *testing.T) {
		_, err := booking.NewMoneyFromCents(-1)
		assert.Error(t, err)
	})

	t.Run("add", func(t *testing.T) {
		sum := booking.NewMoney(100).Add(booking.NewMoney(250))
		assert.Equal(t, int64(350), sum.Cents())
	})
}
