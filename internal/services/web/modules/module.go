// Package modules defines the web module registry.
package modules

import (
	"github.com/louisbranch/staffbook/internal/services/users/client"
	module "github.com/louisbranch/staffbook/internal/services/web/module"
	"github.com/louisbranch/staffbook/internal/services/web/modules/employees"
	"github.com/louisbranch/staffbook/internal/services/web/platform/modulehandler"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the clients and shared handler base used to compose
// the registry. A nil UsersClient mounts the employees module degraded.
type Dependencies struct {
	UsersClient *client.Client
	Employees   employees.Config
	Base        modulehandler.Base
}
