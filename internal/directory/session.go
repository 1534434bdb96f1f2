package directory

import (
	"context"
	"errors"
	"fmt"
)

const maxIDAttempts = 8

// Options configures the behaviours a Session exposes as flags.
type Options struct {
	CreateResponseMode CreateResponseMode
	FilterScope        FilterScope
	// NewID returns a fresh record identifier for create submits.
	NewID func() (string, error)
}

// Session is the explicit view state of one directory viewer: the record
// store, table ordering, paging, filter, record form, and delete prompt.
//
// Events are applied one at a time. A Session is not safe for concurrent
// use; callers sharing one across goroutines must serialize access.
type Session struct {
	gateway  Gateway
	opts     Options
	store    *Store
	loaded   bool
	sort     SortState
	page     int
	pageSize int
	filter   string
	form     Form
	confirm  DeleteConfirmation
}

// NewSession returns an empty, unloaded session backed by gateway.
func NewSession(gateway Gateway, opts Options) *Session {
	if opts.CreateResponseMode == "" {
		opts.CreateResponseMode = CreateResponseRecord
	}
	if opts.FilterScope == "" {
		opts.FilterScope = FilterScopePage
	}
	return &Session{
		gateway:  gateway,
		opts:     opts,
		store:    NewStore(nil),
		pageSize: DefaultPageSize,
	}
}

// Load replaces the store with the gateway's full record set.
func (s *Session) Load(ctx context.Context) error {
	records, err := s.gateway.ListRecords(ctx)
	if err != nil {
		return err
	}
	s.store.Replace(records)
	s.loaded = true
	return nil
}

// Loaded reports whether a fetch has completed at least once.
func (s *Session) Loaded() bool { return s.loaded }

// Records returns the store contents in insertion order.
func (s *Session) Records() []Record { return s.store.Records() }

// Record returns the stored record with id.
func (s *Session) Record(id string) (Record, bool) { return s.store.Get(id) }

// Query returns the current view state.
func (s *Session) Query() Query {
	return Query{
		Sort:     s.sort,
		Page:     s.page,
		PageSize: s.pageSize,
		Filter:   s.filter,
		Scope:    s.opts.FilterScope,
	}
}

// View projects the store through the current view state.
func (s *Session) View() Projection {
	return Project(s.store.Records(), s.Query())
}

// Sort returns the active ordering.
func (s *Session) Sort() SortState { return s.sort }

// ToggleSort applies a column header click.
func (s *Session) ToggleSort(field Field) error {
	next, err := s.sort.Toggle(field)
	if err != nil {
		return err
	}
	s.sort = next
	return nil
}

// SetSort applies an explicit ordering.
func (s *Session) SetSort(sort SortState) error {
	if sort.Active() && !sort.Field.Sortable() {
		return fmt.Errorf("%w: %s", ErrFieldNotSortable, sort.Field)
	}
	s.sort = sort
	return nil
}

// SetPage moves to a zero-based page. Negative pages clamp to the first.
func (s *Session) SetPage(page int) {
	s.page = max(page, 0)
}

// SetPageSize changes rows per page and returns to the first page.
func (s *Session) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	s.pageSize = size
	s.page = 0
}

// SetFilter replaces the name filter.
func (s *Session) SetFilter(filter string) {
	s.filter = filter
}

// Form returns a copy of the record form state.
func (s *Session) Form() Form { return s.form }

// OpenCreate opens the record form for a new record.
func (s *Session) OpenCreate() { s.form.OpenCreate() }

// OpenEdit opens the record form loaded with the stored record id.
func (s *Session) OpenEdit(id string) error {
	record, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	s.form.OpenEdit(record)
	return nil
}

// SetField changes one form value by field name.
func (s *Session) SetField(name, value string) error {
	return s.form.SetField(name, value)
}

// ResetForm clears the form values.
func (s *Session) ResetForm() { s.form.Reset() }

// CloseForm hides the form and keeps its values.
func (s *Session) CloseForm() { s.form.Close() }

// Submit applies the open form: a create goes through the gateway, an edit
// replaces the stored record locally. On success the form is cleared and
// closed; on failure it stays open with its values.
func (s *Session) Submit(ctx context.Context) (Record, error) {
	if !s.form.Open {
		return Record{}, ErrFormClosed
	}
	if s.form.Mode == FormModeEdit {
		return s.submitEdit()
	}
	return s.submitCreate(ctx)
}

func (s *Session) submitCreate(ctx context.Context) (Record, error) {
	id, err := s.newID()
	if err != nil {
		return Record{}, err
	}
	record := s.form.Record(id)
	result, err := s.gateway.CreateRecord(ctx, record)
	if err != nil {
		return Record{}, err
	}

	switch s.opts.CreateResponseMode {
	case CreateResponseList:
		if !result.IsList() {
			return Record{}, fmt.Errorf("%w: expected record list", ErrUnexpectedResponseShape)
		}
		s.store.Replace(result.List)
	default:
		if result.IsList() {
			return Record{}, fmt.Errorf("%w: expected created record", ErrUnexpectedResponseShape)
		}
		created := *result.Record
		if created.ID == "" {
			created.ID = record.ID
		}
		if err := s.store.Insert(created); err != nil {
			// The record already exists upstream; resync instead of leaving
			// the form open for a second create.
			s.form.Clear()
			if err := s.Load(ctx); err != nil {
				return created, fmt.Errorf("reload after create: %w", err)
			}
			return created, nil
		}
		record = created
	}
	s.form.Clear()
	return record, nil
}

func (s *Session) submitEdit() (Record, error) {
	record := s.form.Record(s.form.EditingID)
	if err := s.store.Update(record); err != nil {
		return Record{}, err
	}
	s.form.Clear()
	return record, nil
}

func (s *Session) newID() (string, error) {
	if s.opts.NewID == nil {
		return "", errors.New("record id generator is required")
	}
	for range maxIDAttempts {
		id, err := s.opts.NewID()
		if err != nil {
			return "", fmt.Errorf("generate record id: %w", err)
		}
		if id != "" && !s.store.HasID(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate record id: %w", ErrDuplicateID)
}

// Confirmation returns a copy of the delete prompt state.
func (s *Session) Confirmation() DeleteConfirmation { return s.confirm }

// RequestDelete opens the delete prompt for a stored record.
func (s *Session) RequestDelete(id string) error {
	if !s.store.HasID(id) {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	s.confirm.Request(id)
	return nil
}

// CancelDelete closes the delete prompt.
func (s *Session) CancelDelete() { s.confirm.Cancel() }

// ConfirmDelete deletes the prompted record through the gateway and then
// removes it locally. The prompt closes before the request is sent.
func (s *Session) ConfirmDelete(ctx context.Context, id string) error {
	target, err := s.confirm.Confirm(id)
	if err != nil {
		return err
	}
	if err := s.gateway.DeleteRecord(ctx, target); err != nil {
		return err
	}
	s.store.Delete(target)
	return nil
}
