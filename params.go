package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jupyterkit/kernel-contract-tests/framework"
)

type commandParams struct {
	configPath string
	kernels    stringList
	filters    framework.RegexFilters
	timeout    time.Duration
	debug      bool
	debugAll   bool
}

// envDefaults are harness settings that can be preset in the environment and
// overridden by command-line flags.
type envDefaults struct {
	Timeout time.Duration `env:"KERNEL_TEST_TIMEOUT" envDefault:"10s"`
	Debug   bool          `env:"KERNEL_TEST_DEBUG" envDefault:"false"`
}

func (c *commandParams) Read(args []string) bool {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment configuration: %s\n", err)
		return false
	}

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configPath, "config", "kernels.yaml", "path to the kernel manifest file")
	fs.Var(&c.kernels, "kernel", "kernel name(s) to test (default: every kernel in the manifest)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.DurationVar(&c.timeout, "timeout", defaults.Timeout, "timeout for each kernel request")
	fs.BoolVar(&c.debug, "debug", defaults.Debug, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type stringList []string

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func (s stringList) String() string {
	return strings.Join(s, ", ")
}
