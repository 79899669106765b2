package kerneltests

import (
	"time"

	"github.com/jupyterkit/kernel-contract-tests/framework"
	"github.com/jupyterkit/kernel-contract-tests/kernel"
)

// RunTestSuite runs the full conformance suite: one top-level test group per
// configured kernel, with the standard conformance checks beneath it.
func RunTestSuite(
	registry *kernel.Registry,
	configs []Config,
	timeout time.Duration,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, config := range configs {
			config := config
			c.Run(config.KernelName, func(c *framework.Context) {
				env := &environment{registry: registry, config: config, timeout: timeout}
				t := newTestScope(c, env)
				defer t.close()

				t.Run("kernel info", DoKernelInfoTests)
				t.Run("execute", DoExecuteTests)
				t.Run("display data", DoDisplayDataTests)
				t.Run("isolation", DoIsolationTests)
			})
		}
	})
}
