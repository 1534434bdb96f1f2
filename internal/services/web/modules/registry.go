package modules

import "github.com/louisbranch/staffbook/internal/services/web/modules/employees"

// DefaultModules returns the stable web modules.
func DefaultModules(deps Dependencies) []Module {
	if deps.UsersClient == nil {
		return []Module{employees.New()}
	}
	return []Module{
		employees.NewWithGateway(employees.NewRESTGateway(deps.UsersClient), deps.Employees, deps.Base),
	}
}
