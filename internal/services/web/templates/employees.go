package templates

// EmployeeColumn is one table header cell.
type EmployeeColumn struct {
	Label    string
	Sortable bool
	// Direction is "asc" or "desc" on the active sort column, else empty.
	Direction string
	SortURL   string
}

// EmployeeRow is one visible table row.
type EmployeeRow struct {
	ID          string
	FullName    string
	Address     string
	PhoneNumber string
	Email       string
	EditURL     string
	DeleteURL   string
}

// PaginationView is the table footer.
type PaginationView struct {
	From        int
	To          int
	Total       int
	Size        int
	SizeOptions []int
	PrevURL     string
	NextURL     string
}

// EmployeeFormField is one labelled input of the record dialog.
type EmployeeFormField struct {
	Name  string
	Label string
	Type  string
	Value string
}

// EmployeeFormView is the open record dialog.
type EmployeeFormView struct {
	SubmitURL string
	Fields    []EmployeeFormField
}

// DeleteConfirmView is the open delete prompt.
type DeleteConfirmView struct {
	ConfirmURL string
}

// EmployeesPageView is everything the employees page renders.
type EmployeesPageView struct {
	Columns    []EmployeeColumn
	Rows       []EmployeeRow
	Filter     string
	Pagination PaginationView
	Error      string
	Form       *EmployeeFormView
	Confirm    *DeleteConfirmView
}

// EmployeesRoutes holds the paths the employees fragment links and posts to.
type EmployeesRoutes struct {
	Index       string
	New         string
	Reload      string
	FormReset   string
	FormClose   string
	DeleteAbort string
}

func sortMarker(direction string) string {
	if direction == "desc" {
		return "▼"
	}
	return "▲"
}

func ariaSort(direction string) string {
	if direction == "desc" {
		return "descending"
	}
	return "ascending"
}
