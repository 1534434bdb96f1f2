// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Health  = "/up"
	Metrics = "/metrics"

	Employees             = "/employees/"
	EmployeesIndexPattern = Employees + "{$}"
	EmployeesNew          = Employees + "new"
	EmployeesReload       = Employees + "reload"
	EmployeesFormReset    = Employees + "form/reset"
	EmployeesFormClose    = Employees + "form/close"
	EmployeesDeleteCancel = Employees + "delete/cancel"
	EmployeePattern       = Employees + "{employeeID}"
	EmployeeEditPattern   = Employees + "{employeeID}/edit"
	EmployeeDeletePattern = Employees + "{employeeID}/delete"
	EmployeesQueryFilter  = "q"
	EmployeesQueryPage    = "page"
	EmployeesQuerySize    = "size"
	EmployeesQueryOrderBy = "order_by"
)

// Employee returns the edit-submit route for one employee.
func Employee(employeeID string) string {
	return Employees + escapeSegment(employeeID)
}

// EmployeeEdit returns the route that opens the edit dialog.
func EmployeeEdit(employeeID string) string {
	return Employee(employeeID) + "/edit"
}

// EmployeeDelete returns the delete prompt and confirm route.
func EmployeeDelete(employeeID string) string {
	return Employee(employeeID) + "/delete"
}

// EmployeesWithQuery returns the table route carrying view-state parameters.
// Empty values are omitted.
func EmployeesWithQuery(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		if strings.TrimSpace(value) == "" {
			continue
		}
		values.Set(key, value)
	}
	if len(values) == 0 {
		return Employees
	}
	return Employees + "?" + values.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
