package employees

import (
	"net/http"

	"github.com/louisbranch/staffbook/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.EmployeesIndexPattern, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.EmployeesIndexPattern, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.EmployeesNew, h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.EmployeesReload, h.handleReload)
	mux.HandleFunc(http.MethodPost+" "+routepath.EmployeesFormReset, h.handleFormReset)
	mux.HandleFunc(http.MethodPost+" "+routepath.EmployeesFormClose, h.handleFormClose)
	mux.HandleFunc(http.MethodPost+" "+routepath.EmployeesDeleteCancel, h.handleDeleteCancel)
	mux.HandleFunc(http.MethodPost+" "+routepath.EmployeePattern, h.handleUpdate)
	mux.HandleFunc(http.MethodGet+" "+routepath.EmployeeEditPattern, h.handleEdit)
	mux.HandleFunc(http.MethodGet+" "+routepath.EmployeeDeletePattern, h.handleDeletePrompt)
	mux.HandleFunc(http.MethodPost+" "+routepath.EmployeeDeletePattern, h.handleDeleteConfirm)
	mux.HandleFunc(routepath.Employees, h.WriteNotFound)
}
