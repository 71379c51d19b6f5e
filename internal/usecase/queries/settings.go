package queries

import (
	"context"

	"tablebook/internal/pkg/errs"
)

type SettingsReadStore interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
}

func NewSettingsQueries(readStore SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	view, err := q.readStore.Get(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load settings")
	}
	return view, nil
}
