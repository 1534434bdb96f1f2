package modules

import (
	"testing"

	"github.com/louisbranch/staffbook/internal/services/users/client"
	module "github.com/louisbranch/staffbook/internal/services/web/module"
	"github.com/louisbranch/staffbook/internal/services/web/platform/modulehandler"
)

func TestDefaultModulesWithoutUsersClientAreDegraded(t *testing.T) {
	t.Parallel()

	mods := DefaultModules(Dependencies{})
	if len(mods) != 1 {
		t.Fatalf("module count = %d, want 1", len(mods))
	}
	if got := mods[0].ID(); got != "employees" {
		t.Fatalf("module id = %q, want employees", got)
	}
	reporter, ok := mods[0].(module.HealthReporter)
	if !ok {
		t.Fatal("expected employees module to report health")
	}
	if reporter.Healthy() {
		t.Fatal("expected degraded module")
	}
}

func TestDefaultModulesWithUsersClient(t *testing.T) {
	t.Parallel()

	c, err := client.New("http://localhost:3004")
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}
	mods := DefaultModules(Dependencies{UsersClient: c, Base: modulehandler.NewTestBase()})
	if len(mods) != 1 {
		t.Fatalf("module count = %d, want 1", len(mods))
	}
	if !mods[0].(module.HealthReporter).Healthy() {
		t.Fatal("expected healthy module")
	}
	if _, err := mods[0].Mount(); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
}
