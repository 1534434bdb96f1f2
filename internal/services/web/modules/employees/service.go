package employees

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/staffbook/internal/directory"
	apperrors "github.com/louisbranch/staffbook/internal/services/web/platform/errors"
	"github.com/louisbranch/staffbook/internal/services/web/routepath"
)

// formFields are the posted input names, matching record JSON names.
var formFields = []directory.Field{
	directory.FieldFullName,
	directory.FieldAddress,
	directory.FieldPhoneNumber,
	directory.FieldEmail,
}

// service applies browser requests to a directory session and translates
// domain failures into typed web errors.
type service struct{}

func newService() service {
	return service{}
}

// ensureLoaded fetches the record set once per session.
func (service) ensureLoaded(ctx context.Context, sess *directory.Session) error {
	if sess.Loaded() {
		return nil
	}
	return mapError(sess.Load(ctx))
}

func (service) reload(ctx context.Context, sess *directory.Session) error {
	return mapError(sess.Load(ctx))
}

// applyQuery updates view state from table query parameters. A size without
// a page returns to the first page; an explicit page wins.
func (service) applyQuery(sess *directory.Session, query url.Values) error {
	if query.Has(routepath.EmployeesQueryOrderBy) {
		sort, err := directory.ParseOrderBy(query.Get(routepath.EmployeesQueryOrderBy))
		if err != nil {
			return mapError(err)
		}
		if err := sess.SetSort(sort); err != nil {
			return mapError(err)
		}
	}
	if query.Has(routepath.EmployeesQueryFilter) {
		sess.SetFilter(query.Get(routepath.EmployeesQueryFilter))
	}
	if query.Has(routepath.EmployeesQuerySize) {
		size, err := strconv.Atoi(strings.TrimSpace(query.Get(routepath.EmployeesQuerySize)))
		if err != nil || size <= 0 || size > directory.MaxPageSize {
			return invalidQuery(fmt.Sprintf("size must be between 1 and %d", directory.MaxPageSize))
		}
		sess.SetPageSize(size)
	}
	if query.Has(routepath.EmployeesQueryPage) {
		page, err := strconv.Atoi(strings.TrimSpace(query.Get(routepath.EmployeesQueryPage)))
		if err != nil || page < 0 {
			return invalidQuery("page must be a non-negative integer")
		}
		sess.SetPage(page)
	}
	return nil
}

func (service) openCreate(sess *directory.Session) {
	sess.OpenCreate()
}

func (service) openEdit(sess *directory.Session, id string) error {
	return mapError(sess.OpenEdit(id))
}

// captureFields copies posted inputs into the open form. Absent inputs keep
// their current value.
func (service) captureFields(sess *directory.Session, form url.Values) error {
	for _, field := range formFields {
		if !form.Has(string(field)) {
			continue
		}
		if err := sess.SetField(string(field), form.Get(string(field))); err != nil {
			return mapError(err)
		}
	}
	return nil
}

// submitCreate submits the create dialog, opening it first if this browser's
// session lost it.
func (s service) submitCreate(ctx context.Context, sess *directory.Session, form url.Values) (directory.Record, error) {
	current := sess.Form()
	if !current.Open || current.Mode != directory.FormModeCreate {
		sess.OpenCreate()
	}
	if err := s.captureFields(sess, form); err != nil {
		return directory.Record{}, err
	}
	record, err := sess.Submit(ctx)
	return record, mapError(err)
}

// submitEdit submits the edit dialog for id, reopening it on that record if
// the session's dialog targets something else.
func (s service) submitEdit(ctx context.Context, sess *directory.Session, id string, form url.Values) (directory.Record, error) {
	current := sess.Form()
	if !current.Open || current.Mode != directory.FormModeEdit || current.EditingID != id {
		if err := sess.OpenEdit(id); err != nil {
			return directory.Record{}, mapError(err)
		}
	}
	if err := s.captureFields(sess, form); err != nil {
		return directory.Record{}, err
	}
	record, err := sess.Submit(ctx)
	return record, mapError(err)
}

func (service) resetForm(sess *directory.Session) {
	sess.ResetForm()
}

// closeForm keeps the posted draft and hides the dialog.
func (s service) closeForm(sess *directory.Session, form url.Values) error {
	if sess.Form().Open {
		if err := s.captureFields(sess, form); err != nil {
			return err
		}
	}
	sess.CloseForm()
	return nil
}

func (service) requestDelete(sess *directory.Session, id string) error {
	return mapError(sess.RequestDelete(id))
}

func (service) cancelDelete(sess *directory.Session) {
	sess.CancelDelete()
}

func (service) confirmDelete(ctx context.Context, sess *directory.Session, id string) error {
	return mapError(sess.ConfirmDelete(ctx, id))
}

func invalidQuery(message string) error {
	return apperrors.EK(apperrors.KindInvalidInput, "error.invalid_query", message)
}

// mapError gives domain failures a web kind. Errors already typed by the
// gateway pass through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, directory.ErrRecordNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, "error.employee_not_found", err)
	case errors.Is(err, directory.ErrDuplicateID):
		return apperrors.Wrap(apperrors.KindConflict, "error.duplicate_id", err)
	case errors.Is(err, directory.ErrInvalidOrderBy), errors.Is(err, directory.ErrFieldNotSortable):
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_order_by", err)
	case errors.Is(err, directory.ErrUnknownField):
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_form", err)
	case errors.Is(err, directory.ErrFormClosed):
		return apperrors.Wrap(apperrors.KindConflict, "error.form_closed", err)
	case errors.Is(err, directory.ErrDeleteNotConfirmed):
		return apperrors.Wrap(apperrors.KindConflict, "error.delete_not_confirmed", err)
	case errors.Is(err, directory.ErrUnexpectedResponseShape):
		return apperrors.Wrap(apperrors.KindBadGateway, "error.unexpected_response", err)
	default:
		return apperrors.Wrap(apperrors.KindUnknown, "", err)
	}
}
