// Package app mounts web modules onto a root mux.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/staffbook/internal/services/web/module"
	"github.com/louisbranch/staffbook/internal/services/web/platform/weberror"
)

// ComposeInput carries the modules to mount and an optional fallback for
// paths no module owns.
type ComposeInput struct {
	Modules  []module.Module
	NotFound http.Handler
}

// Compose builds a root handler from modules. Prefixes must be unique.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}

	notFound := input.NotFound
	if notFound == nil {
		notFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			weberror.WriteAppError(w, r, http.StatusNotFound, "")
		})
	}
	if _, ok := seen["/"]; !ok {
		root.Handle("/", notFound)
	}
	return root, nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
