package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusSeated, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transition is offered.
func (s Status) IsTerminal() bool {
	return s == StatusSeated || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Actor identifies who is attempting an operation on a reservation.
type Actor string

const (
	ActorGuest   Actor = "guest"
	ActorStaff   Actor = "staff"
	ActorManager Actor = "manager"
)

func (a Actor) String() string {
	return string(a)
}
