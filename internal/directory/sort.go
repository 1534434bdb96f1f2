package directory

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"
)

// Direction is the column sort direction.
type Direction int

const (
	DirectionUnset Direction = iota
	DirectionAsc
	DirectionDesc
)

// String returns the lowercase direction keyword.
func (d Direction) String() string {
	switch d {
	case DirectionAsc:
		return "asc"
	case DirectionDesc:
		return "desc"
	default:
		return ""
	}
}

// SortState is the active table ordering. The zero value leaves records in
// insertion order.
type SortState struct {
	Field     Field
	Direction Direction
}

// Active reports whether the state orders records at all.
func (s SortState) Active() bool {
	return s.Field != "" && s.Direction != DirectionUnset
}

// Toggle returns the state after a header click on field: the active column
// flips from ascending to descending, anything else starts ascending.
func (s SortState) Toggle(field Field) (SortState, error) {
	if !field.Sortable() {
		return s, fmt.Errorf("%w: %s", ErrFieldNotSortable, field)
	}
	if s.Field == field && s.Direction == DirectionAsc {
		return SortState{Field: field, Direction: DirectionDesc}, nil
	}
	return SortState{Field: field, Direction: DirectionAsc}, nil
}

// OrderBy renders the state as an order_by expression such as "full_name desc".
func (s SortState) OrderBy() string {
	if !s.Active() {
		return ""
	}
	if s.Direction == DirectionDesc {
		return s.Field.Path() + " desc"
	}
	return s.Field.Path()
}

type orderByRequest string

func (r orderByRequest) GetOrderBy() string { return string(r) }

// ParseOrderBy parses an order_by expression naming at most one sortable
// column. An empty expression yields the unsorted state.
func ParseOrderBy(raw string) (SortState, error) {
	orderBy, err := ordering.ParseOrderBy(orderByRequest(strings.TrimSpace(raw)))
	if err != nil {
		return SortState{}, fmt.Errorf("%w: %v", ErrInvalidOrderBy, err)
	}
	if len(orderBy.Fields) == 0 {
		return SortState{}, nil
	}
	if len(orderBy.Fields) > 1 {
		return SortState{}, fmt.Errorf("%w: only one field may be ordered", ErrInvalidOrderBy)
	}
	if err := orderBy.ValidateForPaths(FieldFullName.Path(), FieldEmail.Path()); err != nil {
		return SortState{}, fmt.Errorf("%w: %v", ErrInvalidOrderBy, err)
	}
	field, err := ParseField(orderBy.Fields[0].Path)
	if err != nil {
		return SortState{}, fmt.Errorf("%w: %v", ErrInvalidOrderBy, err)
	}
	direction := DirectionAsc
	if orderBy.Fields[0].Desc {
		direction = DirectionDesc
	}
	return SortState{Field: field, Direction: direction}, nil
}
