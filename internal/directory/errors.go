package directory

import "errors"

var (
	// ErrDuplicateID indicates an insert whose id is already present in the store.
	ErrDuplicateID = errors.New("record id already exists")
	// ErrRecordNotFound indicates an operation targeting an id the store does not hold.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownField indicates a field name outside the record schema.
	ErrUnknownField = errors.New("unknown record field")
	// ErrFieldNotSortable indicates a sort request on a column that does not sort.
	ErrFieldNotSortable = errors.New("record field is not sortable")
	// ErrInvalidOrderBy indicates an order_by expression that cannot be applied.
	ErrInvalidOrderBy = errors.New("invalid order by")
	// ErrUnexpectedResponseShape indicates a create response whose JSON shape
	// does not match the configured CreateResponseMode.
	ErrUnexpectedResponseShape = errors.New("unexpected create response shape")
	// ErrDeleteNotConfirmed indicates a delete confirm with no matching pending prompt.
	ErrDeleteNotConfirmed = errors.New("delete was not confirmed")
	// ErrFormClosed indicates a submit while the record form is not open.
	ErrFormClosed = errors.New("record form is not open")
)
