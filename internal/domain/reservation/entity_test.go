//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGuestName(t *testing.T, s string) reservation.GuestName {
	t.Helper()
	name, err := reservation.NewGuestName(s)
	require.NoError(t, err)
	return name
}

func mustPhone(t *testing.T, s string) reservation.Phone {
	t.Helper()
	phone, err := reservation.NewPhone(s)
	require.NoError(t, err)
	return phone
}

func eveningSlot(t *testing.T) schedule.Slot {
	t.Helper()
	slot, err := schedule.NewSlot(19, 0)
	require.NoError(t, err)
	return slot
}

func TestNewGuestName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := reservation.NewGuestName("  Ada Lovelace  ")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", name.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := reservation.NewGuestName("   ")
		assert.ErrorIs(t, err, reservation.ErrEmptyGuestName)
	})
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "international format", input: "+49 30 1234567"},
		{name: "dashes and parens", input: "(030) 123-4567"},
		{name: "digits only", input: "0301234567"},
		{name: "empty", input: "  ", errIs: reservation.ErrEmptyPhone},
		{name: "letters", input: "call me", errIs: reservation.ErrInvalidPhone},
		{name: "slash", input: "030/1234567", errIs: reservation.ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := reservation.NewPhone(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, phone.String())
		})
	}
}

func TestNewNote(t *testing.T) {
	note := reservation.NewNote("  window seat please  ")
	assert.Equal(t, "window seat please", note.String())
	assert.False(t, note.IsEmpty())

	empty := reservation.NewNote("   ")
	assert.True(t, empty.IsEmpty())
}

func TestNewReservation(t *testing.T) {
	name := mustGuestName(t, "Ada Lovelace")
	phone := mustPhone(t, "+49 30 1234567")
	slot := eveningSlot(t)

	t.Run("starts confirmed with a fresh id", func(t *testing.T) {
		res, err := reservation.NewReservation(name, phone, "2026-06-15", slot, 2, reservation.NewNote(""))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, "2026-06-15", res.Date())
		assert.Equal(t, slot, res.Slot())
		assert.Equal(t, 2, res.Guests())
		assert.True(t, res.IsActive())
		assert.Nil(t, res.AIMessage())
		assert.Nil(t, res.AIChefNote())
	})

	t.Run("rejects party size below one", func(t *testing.T) {
		_, err := reservation.NewReservation(name, phone, "2026-06-15", slot, 0, reservation.NewNote(""))
		assert.ErrorIs(t, err, reservation.ErrInvalidPartySize)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := reservation.NewReservation(name, phone, "June 15th", slot, 2, reservation.NewNote(""))
		assert.Error(t, err)
	})
}

func TestAttachAICopy(t *testing.T) {
	name := mustGuestName(t, "Ada Lovelace")
	phone := mustPhone(t, "+49 30 1234567")

	res, err := reservation.NewReservation(name, phone, "2026-06-15", eveningSlot(t), 2, reservation.NewNote(""))
	require.NoError(t, err)

	t.Run("stores both strings", func(t *testing.T) {
		res.AttachAICopy("See you at 19:00!", "party of 2, no allergies noted")
		require.NotNil(t, res.AIMessage())
		assert.Equal(t, "See you at 19:00!", *res.AIMessage())
		require.NotNil(t, res.AIChefNote())
		assert.Equal(t, "party of 2, no allergies noted", *res.AIChefNote())
	})

	t.Run("empty strings leave fields untouched", func(t *testing.T) {
		fresh, err := reservation.NewReservation(name, phone, "2026-06-15", eveningSlot(t), 2, reservation.NewNote(""))
		require.NoError(t, err)

		fresh.AttachAICopy("", "")
		assert.Nil(t, fresh.AIMessage())
		assert.Nil(t, fresh.AIChefNote())
	})
}

func TestIsActive(t *testing.T) {
	name := mustGuestName(t, "Ada Lovelace")
	phone := mustPhone(t, "+49 30 1234567")
	slot := eveningSlot(t)

	seated := reservation.ReconstructReservation(
		uuid.New(), name, phone, "2026-06-15", slot, 2,
		reservation.NewNote(""), reservation.StatusSeated, nil, nil,
		time.Time{}, time.Time{},
	)
	assert.True(t, seated.IsActive())

	cancelled := reservation.ReconstructReservation(
		uuid.New(), name, phone, "2026-06-15", slot, 2,
		reservation.NewNote(""), reservation.StatusCancelled, nil, nil,
		time.Time{}, time.Time{},
	)
	assert.False(t, cancelled.IsActive())
}
