package employees

import (
	"testing"

	"github.com/louisbranch/staffbook/internal/services/web/routepath"
)

func TestModuleIdentityAndHealth(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "employees" {
		t.Fatalf("ID() = %q, want employees", got)
	}
	if New().Healthy() {
		t.Fatal("expected degraded module to be unhealthy")
	}
	if !newTestModule(newFakeGateway()).Healthy() {
		t.Fatal("expected module with gateway to be healthy")
	}
}

func TestMountUsesEmployeesPrefix(t *testing.T) {
	t.Parallel()

	mount, err := newTestModule(newFakeGateway()).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Employees {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Employees)
	}
	if mount.Handler == nil {
		t.Fatal("expected handler")
	}
}
