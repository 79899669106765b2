package kernel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jupyterkit/kernel-contract-tests/framework"
)

// SessionFactory opens a new session to the kernel it represents.
type SessionFactory func(logger framework.Logger) (Session, error)

// Registry is the explicit table of kernels a test run may open, keyed by
// registered kernel name. Making the table an explicit value passed into the
// suite, rather than ambient global state, keeps test runs hermetic: a run
// only ever sees the kernels it was configured with.
type Registry struct {
	factories map[string]SessionFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]SessionFactory)}
}

// Register adds a kernel under the given name. Registering a name twice is
// an error; there must be exactly one configuration source per kernel name.
func (r *Registry) Register(name string, factory SessionFactory) error {
	if name == "" {
		return errors.New("kernel name must not be empty")
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("kernel %q is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Names returns the registered kernel names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open starts a new session to the named kernel.
func (r *Registry) Open(name string, logger framework.Logger) (Session, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("no kernel registered under name %q", name)
	}
	return factory(logger)
}
