package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jupyterkit/kernel-contract-tests/framework"
	"github.com/jupyterkit/kernel-contract-tests/internal/kernels"
	"github.com/jupyterkit/kernel-contract-tests/kernel"
	"github.com/jupyterkit/kernel-contract-tests/kerneltests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	configs, err := kerneltests.LoadConfigFile(params.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}
	if len(params.kernels) > 0 {
		configs, err = selectConfigs(configs, params.kernels)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
			os.Exit(1)
		}
	}

	registry := kernel.NewRegistry()
	if err := kernels.RegisterBuiltin(registry); err != nil {
		fmt.Fprintf(os.Stderr, "Kernel registry error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	var names []string
	for _, cfg := range configs {
		names = append(names, cfg.KernelName)
	}
	fmt.Printf("Running kernel conformance suite against: %s\n", strings.Join(names, ", "))

	testLogger := ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := kerneltests.RunTestSuite(registry, configs, params.timeout, params.filters.AsFilter, &testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}

func selectConfigs(configs []kerneltests.Config, names []string) ([]kerneltests.Config, error) {
	byName := make(map[string]kerneltests.Config, len(configs))
	for _, cfg := range configs {
		byName[cfg.KernelName] = cfg
	}
	var selected []kerneltests.Config
	for _, name := range names {
		cfg, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("kernel %q is not defined in the manifest", name)
		}
		selected = append(selected, cfg)
	}
	return selected, nil
}
