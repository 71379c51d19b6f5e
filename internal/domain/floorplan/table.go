package floorplan

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTableName    = errors.New("table name is required")
	ErrInvalidCapacity   = errors.New("table capacity must be at least 1")
	ErrInvalidTableShape = errors.New("invalid table shape")
)

type Shape string

const (
	ShapeRound  Shape = "round"
	ShapeSquare Shape = "square"
	ShapeRect   Shape = "rect"
)

func (s Shape) IsValid() bool {
	switch s {
	case ShapeRound, ShapeSquare, ShapeRect:
		return true
	default:
		return false
	}
}

func NewShape(s string) (Shape, error) {
	shape := Shape(s)
	if !shape.IsValid() {
		return "", ErrInvalidTableShape
	}
	return shape, nil
}

// Table is a floor-plan element. Tables carry no reservation foreign key;
// occupancy is derived at read time from the day's reservations.
type Table struct {
	id        uuid.UUID
	name      string
	capacity  int
	shape     Shape
	x         int
	y         int
	createdAt time.Time
	updatedAt time.Time
}

func NewTable(name string, capacity int, shape Shape, x, y int) (*Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTableName
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if !shape.IsValid() {
		return nil, ErrInvalidTableShape
	}
	return &Table{
		id:       uuid.New(),
		name:     name,
		capacity: capacity,
		shape:    shape,
		x:        x,
		y:        y,
	}, nil
}

func ReconstructTable(id uuid.UUID, name string, capacity int, shape Shape, x, y int, createdAt, updatedAt time.Time) *Table {
	return &Table{
		id:        id,
		name:      name,
		capacity:  capacity,
		shape:     shape,
		x:         x,
		y:         y,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Table) ID() uuid.UUID        { return t.id }
func (t *Table) Name() string         { return t.name }
func (t *Table) Capacity() int        { return t.capacity }
func (t *Table) Shape() Shape         { return t.shape }
func (t *Table) X() int               { return t.x }
func (t *Table) Y() int               { return t.y }
func (t *Table) CreatedAt() time.Time { return t.createdAt }
func (t *Table) UpdatedAt() time.Time { return t.updatedAt }
