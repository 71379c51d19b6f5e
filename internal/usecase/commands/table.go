package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/floorplan"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTableNotFound         = errs.New("table not found")
	ErrTableValidationFailed = errs.New("table validation failed")
)

type TableParams struct {
	Name     string
	Capacity int
	Shape    string
	X        int
	Y        int
}

type TableCommands interface {
	Create(ctx context.Context, params TableParams) (*queries.TableView, error)
	Update(ctx context.Context, id uuid.UUID, params TableParams) (*queries.TableView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tableCommandsImpl struct {
	repo       TableRepository
	viewReader TableViewReader
	db         *pgxpool.Pool
}

func NewTableCommands(repo TableRepository, viewReader TableViewReader, db *pgxpool.Pool) TableCommands {
	return &tableCommandsImpl{
		repo:       repo,
		viewReader: viewReader,
		db:         db,
	}
}

func (t *tableCommandsImpl) Create(ctx context.Context, params TableParams) (*queries.TableView, error) {
	entity, err := t.buildEntity(params)
	if err != nil {
		return nil, errs.Mark(err, ErrTableValidationFailed)
	}

	id, err := t.repo.Create(ctx, t.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return t.readBack(ctx, id)
}

func (t *tableCommandsImpl) Update(ctx context.Context, id uuid.UUID, params TableParams) (*queries.TableView, error) {
	existing, err := t.viewReader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	built, err := t.buildEntity(params)
	if err != nil {
		return nil, errs.Mark(err, ErrTableValidationFailed)
	}
	entity := floorplan.ReconstructTable(existing.ID, built.Name(), built.Capacity(), built.Shape(), built.X(), built.Y(), time.Time{}, time.Time{})

	if err := t.repo.Update(ctx, t.db, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return t.readBack(ctx, id)
}

func (t *tableCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := t.viewReader.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTableNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := t.repo.Delete(ctx, t.db, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (t *tableCommandsImpl) buildEntity(params TableParams) (*floorplan.Table, error) {
	shape, err := floorplan.NewShape(params.Shape)
	if err != nil {
		return nil, err
	}
	return floorplan.NewTable(params.Name, params.Capacity, shape, params.X, params.Y)
}

func (t *tableCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.TableView, error) {
	view, err := t.viewReader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
