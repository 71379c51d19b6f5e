// Package aicopy is the port to the external text-generation service that
// writes confirmation copy for new reservations. The produced strings are
// stored on the reservation as opaque, purely informational fields.
package aicopy

import (
	"context"
	"fmt"
)

type Draft struct {
	GuestName string
	Date      string
	Time      string
	Guests    int
	Notes     string
}

type Copy struct {
	ConfirmationMessage string
	ChefNote            string
}

type Writer interface {
	ConfirmationCopy(ctx context.Context, draft Draft) (*Copy, error)
}

// StaticWriter is the fallback implementation used when no generative
// backend is configured: plain templates, always succeeds.
type StaticWriter struct{}

func NewStaticWriter() *StaticWriter {
	return &StaticWriter{}
}

func (w *StaticWriter) ConfirmationCopy(_ context.Context, draft Draft) (*Copy, error) {
	c := &Copy{
		ConfirmationMessage: fmt.Sprintf(
			"Thank you, %s! Your table for %d on %s at %s is confirmed. We look forward to welcoming you.",
			draft.GuestName, draft.Guests, draft.Date, draft.Time,
		),
		ChefNote: fmt.Sprintf("Party of %d at %s.", draft.Guests, draft.Time),
	}
	if draft.Notes != "" {
		c.ChefNote += " Guest notes: " + draft.Notes
	}
	return c, nil
}
