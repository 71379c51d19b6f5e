package commands

import (
	"context"

	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSettingsValidationFailed = errs.New("settings validation failed")

type UpdateSettingsParams struct {
	MaxCapacityPerSlot int
	Holidays           []string
}

type SettingsCommands interface {
	Update(ctx context.Context, params UpdateSettingsParams) (*queries.SettingsView, error)
}

type settingsCommandsImpl struct {
	repo        SettingsRepository
	readStore   queries.SettingsReadStore
	invalidator SettingsInvalidator
	db          *pgxpool.Pool
}

func NewSettingsCommands(repo SettingsRepository, readStore queries.SettingsReadStore, invalidator SettingsInvalidator, db *pgxpool.Pool) SettingsCommands {
	return &settingsCommandsImpl{
		repo:        repo,
		readStore:   readStore,
		invalidator: invalidator,
		db:          db,
	}
}

func (s *settingsCommandsImpl) Update(ctx context.Context, params UpdateSettingsParams) (*queries.SettingsView, error) {
	if params.MaxCapacityPerSlot < 1 {
		return nil, errs.Mark(errs.New("max capacity per slot must be at least 1"), ErrSettingsValidationFailed)
	}
	holidays := make([]string, 0, len(params.Holidays))
	for _, h := range params.Holidays {
		if _, err := schedule.ParseDate(h); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "invalid holiday date"), ErrSettingsValidationFailed)
		}
		holidays = append(holidays, h)
	}

	if err := s.repo.Update(ctx, s.db, params.MaxCapacityPerSlot, holidays); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Cached settings must not outlive the row they were read from.
	s.invalidator.Invalidate()

	view, err := s.readStore.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
