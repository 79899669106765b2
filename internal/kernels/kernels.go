// Package kernels wires the example kernels that ship with the harness into
// a kernel registry.
package kernels

import (
	"github.com/jupyterkit/kernel-contract-tests/framework"
	"github.com/jupyterkit/kernel-contract-tests/internal/kernels/echo"
	"github.com/jupyterkit/kernel-contract-tests/internal/kernels/moon"
	"github.com/jupyterkit/kernel-contract-tests/kernel"
)

// RegisterBuiltin registers the example kernels under the names their
// kernelspec entries use.
func RegisterBuiltin(r *kernel.Registry) error {
	if err := r.Register("iecho", func(logger framework.Logger) (kernel.Session, error) {
		return kernel.NewLocalSession("iecho", echo.New(), logger), nil
	}); err != nil {
		return err
	}
	return r.Register("imoon", func(logger framework.Logger) (kernel.Session, error) {
		return kernel.NewLocalSession("imoon", moon.New(), logger), nil
	})
}
