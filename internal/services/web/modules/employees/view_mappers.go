package employees

import (
	"strconv"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/staffbook/internal/services/web/templates"
)

func employeesRoutes() webtemplates.EmployeesRoutes {
	return webtemplates.EmployeesRoutes{
		Index:       routepath.Employees,
		New:         routepath.EmployeesNew,
		Reload:      routepath.EmployeesReload,
		FormReset:   routepath.EmployeesFormReset,
		FormClose:   routepath.EmployeesFormClose,
		DeleteAbort: routepath.EmployeesDeleteCancel,
	}
}

func employeesPageView(sess *directory.Session, loc webtemplates.Localizer) webtemplates.EmployeesPageView {
	query := sess.Query()
	projection := sess.View()
	view := webtemplates.EmployeesPageView{
		Columns:    columnViews(query.Sort, loc),
		Rows:       rowViews(projection.Rows),
		Filter:     query.Filter,
		Pagination: paginationView(projection),
	}
	if form := sess.Form(); form.Open {
		view.Form = formView(form, loc)
	}
	if confirm := sess.Confirmation(); confirm.Open {
		view.Confirm = &webtemplates.DeleteConfirmView{ConfirmURL: routepath.EmployeeDelete(confirm.TargetID)}
	}
	return view
}

func columnViews(sort directory.SortState, loc webtemplates.Localizer) []webtemplates.EmployeeColumn {
	fields := directory.Fields()
	columns := make([]webtemplates.EmployeeColumn, 0, len(fields))
	for _, field := range fields {
		column := webtemplates.EmployeeColumn{Label: webtemplates.T(loc, "employees.col."+field.Path())}
		if next, err := sort.Toggle(field); err == nil {
			column.Sortable = true
			column.SortURL = routepath.EmployeesWithQuery(map[string]string{routepath.EmployeesQueryOrderBy: next.OrderBy()})
			if sort.Active() && sort.Field == field {
				column.Direction = sort.Direction.String()
			}
		}
		columns = append(columns, column)
	}
	return columns
}

func rowViews(records []directory.Record) []webtemplates.EmployeeRow {
	rows := make([]webtemplates.EmployeeRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, webtemplates.EmployeeRow{
			ID:          record.ID,
			FullName:    record.FullName,
			Address:     record.Address,
			PhoneNumber: record.PhoneNumber,
			Email:       record.Email,
			EditURL:     routepath.EmployeeEdit(record.ID),
			DeleteURL:   routepath.EmployeeDelete(record.ID),
		})
	}
	return rows
}

// paginationView mirrors a "from-to of total" footer; an empty set reads 0-0.
func paginationView(p directory.Projection) webtemplates.PaginationView {
	view := webtemplates.PaginationView{
		Total:       p.Total,
		Size:        p.PageSize,
		SizeOptions: directory.PageSizeOptions(),
	}
	view.From, view.To = p.Range()
	if p.Page > 0 {
		view.PrevURL = pageURL(p.Page - 1)
	}
	if p.HasNext() {
		view.NextURL = pageURL(p.Page + 1)
	}
	return view
}

func pageURL(page int) string {
	return routepath.EmployeesWithQuery(map[string]string{routepath.EmployeesQueryPage: strconv.Itoa(page)})
}

func formView(form directory.Form, loc webtemplates.Localizer) *webtemplates.EmployeeFormView {
	submitURL := routepath.Employees
	if form.Mode == directory.FormModeEdit {
		submitURL = routepath.Employee(form.EditingID)
	}
	values := map[directory.Field]string{
		directory.FieldFullName:    form.Values.FullName,
		directory.FieldAddress:     form.Values.Address,
		directory.FieldPhoneNumber: form.Values.PhoneNumber,
		directory.FieldEmail:       form.Values.Email,
	}
	fields := make([]webtemplates.EmployeeFormField, 0, len(formFields))
	for _, field := range formFields {
		inputType := "text"
		switch field {
		case directory.FieldEmail:
			inputType = "email"
		case directory.FieldPhoneNumber:
			inputType = "tel"
		}
		fields = append(fields, webtemplates.EmployeeFormField{
			Name:  string(field),
			Label: webtemplates.T(loc, "employees.form."+field.Path()),
			Type:  inputType,
			Value: values[field],
		})
	}
	return &webtemplates.EmployeeFormView{SubmitURL: submitURL, Fields: fields}
}
