//go:build unit

package reservation_test

import (
	"testing"

	"tablebook/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  reservation.Status
		to    reservation.Status
		actor reservation.Actor
		errIs error
	}{
		{name: "staff seats a confirmed reservation", from: reservation.StatusConfirmed, to: reservation.StatusSeated, actor: reservation.ActorStaff},
		{name: "manager seats a confirmed reservation", from: reservation.StatusConfirmed, to: reservation.StatusSeated, actor: reservation.ActorManager},
		{name: "manager cancels a confirmed reservation", from: reservation.StatusConfirmed, to: reservation.StatusCancelled, actor: reservation.ActorManager},
		{name: "staff may not cancel", from: reservation.StatusConfirmed, to: reservation.StatusCancelled, actor: reservation.ActorStaff, errIs: reservation.ErrIllegalTransition},
		{name: "guest may not seat", from: reservation.StatusConfirmed, to: reservation.StatusSeated, actor: reservation.ActorGuest, errIs: reservation.ErrIllegalTransition},
		{name: "guest may not cancel", from: reservation.StatusConfirmed, to: reservation.StatusCancelled, actor: reservation.ActorGuest, errIs: reservation.ErrIllegalTransition},
		{name: "seated is terminal for cancellation", from: reservation.StatusSeated, to: reservation.StatusCancelled, actor: reservation.ActorManager, errIs: reservation.ErrIllegalTransition},
		{name: "seated cannot return to confirmed", from: reservation.StatusSeated, to: reservation.StatusConfirmed, actor: reservation.ActorManager, errIs: reservation.ErrIllegalTransition},
		{name: "cancelled cannot be seated", from: reservation.StatusCancelled, to: reservation.StatusSeated, actor: reservation.ActorManager, errIs: reservation.ErrIllegalTransition},
		{name: "cancelled cannot return to confirmed", from: reservation.StatusCancelled, to: reservation.StatusConfirmed, actor: reservation.ActorManager, errIs: reservation.ErrIllegalTransition},
		{name: "no self transition", from: reservation.StatusConfirmed, to: reservation.StatusConfirmed, actor: reservation.ActorManager, errIs: reservation.ErrIllegalTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := reservation.CanTransition(tc.from, tc.to, tc.actor)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Terminal statuses offer no onward transition to any actor.
func TestTerminalStatusesHaveNoExits(t *testing.T) {
	actors := []reservation.Actor{reservation.ActorGuest, reservation.ActorStaff, reservation.ActorManager}

	for _, status := range []reservation.Status{reservation.StatusSeated, reservation.StatusCancelled} {
		assert.True(t, status.IsTerminal())
		for _, actor := range actors {
			assert.Empty(t, reservation.NextStatuses(status, actor),
				"%s must offer no transitions to %s", status, actor)
		}
	}
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]reservation.Status{reservation.StatusSeated},
		reservation.NextStatuses(reservation.StatusConfirmed, reservation.ActorStaff))

	assert.ElementsMatch(t,
		[]reservation.Status{reservation.StatusSeated, reservation.StatusCancelled},
		reservation.NextStatuses(reservation.StatusConfirmed, reservation.ActorManager))

	assert.Empty(t, reservation.NextStatuses(reservation.StatusConfirmed, reservation.ActorGuest))
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, reservation.CanDelete(reservation.ActorManager))
	assert.ErrorIs(t, reservation.CanDelete(reservation.ActorStaff), reservation.ErrDeleteForbidden)
	assert.ErrorIs(t, reservation.CanDelete(reservation.ActorGuest), reservation.ErrDeleteForbidden)
}

func TestNewStatus(t *testing.T) {
	status, err := reservation.NewStatus("seated")
	assert.NoError(t, err)
	assert.Equal(t, reservation.StatusSeated, status)

	_, err = reservation.NewStatus("noshow")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
