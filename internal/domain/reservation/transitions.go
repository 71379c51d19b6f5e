package reservation

// Transition defines a permitted status change and the actor allowed to
// trigger it.
type Transition struct {
	From  Status
	To    Status
	Actor Actor
}

// validTransitions is the authoritative state machine. Both seated and
// cancelled are terminal; there is no path back to confirmed.
var validTransitions = []Transition{
	{From: StatusConfirmed, To: StatusSeated, Actor: ActorStaff},
	{From: StatusConfirmed, To: StatusSeated, Actor: ActorManager},
	{From: StatusConfirmed, To: StatusCancelled, Actor: ActorManager},
}

type transitionKey struct {
	from  Status
	to    Status
	actor Actor
}

var transitionSet = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition reports whether actor may move a reservation from one
// status to another.
func CanTransition(from, to Status, actor Actor) error {
	if transitionSet[transitionKey{from, to, actor}] {
		return nil
	}
	return ErrIllegalTransition
}

// NextStatuses returns the statuses actor may move a reservation to.
// The API offers only these actions, so illegal transitions are a caller
// bug rather than a data-layer concern.
func NextStatuses(from Status, actor Actor) []Status {
	var next []Status
	for _, t := range validTransitions {
		if t.From == from && t.Actor == actor {
			next = append(next, t.To)
		}
	}
	return next
}

// CanDelete reports whether actor may hard-delete a reservation. Deletion
// is permitted from any status and is distinct from cancellation, which
// keeps the record for reporting.
func CanDelete(actor Actor) error {
	if actor == ActorManager {
		return nil
	}
	return ErrDeleteForbidden
}
