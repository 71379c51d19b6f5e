package reservation

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrEmptyGuestName    = errors.New("guest name is required")
	ErrEmptyPhone        = errors.New("phone number is required")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidPartySize  = errors.New("party size must be at least 1")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrDeleteForbidden   = errors.New("only a manager may delete a reservation")
)

type GuestName struct {
	value string
}

func NewGuestName(s string) (GuestName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GuestName{}, ErrEmptyGuestName
	}
	return GuestName{value: s}, nil
}

func (n GuestName) String() string {
	return n.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, ErrEmptyPhone
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !strings.ContainsRune("+-() ", r) {
			return Phone{}, ErrInvalidPhone
		}
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

type Note struct {
	value string
}

func NewNote(s string) Note {
	return Note{value: strings.TrimSpace(s)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
