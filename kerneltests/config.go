package kerneltests

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExecutePair is one scripted code sample and the exact result text it is
// expected to produce.
type ExecutePair struct {
	Code   string `yaml:"code"`
	Result string `yaml:"result"`
}

// Config is the conformance configuration for one kernel. KernelName and
// LanguageName are required; everything else enables optional test groups.
type Config struct {
	// KernelName identifies the kernel in the registry the suite runs against.
	KernelName string `yaml:"kernel_name"`

	// LanguageName must match language_info.name in the kernel's
	// kernel_info_reply.
	LanguageName string `yaml:"language_name"`

	// CodeHelloWorld, when set, is executed as a smoke test. When unset the
	// hello-world test is skipped rather than failed.
	CodeHelloWorld string `yaml:"code_hello_world"`

	// CodeExecuteResult drives the result-value assertions, in order.
	CodeExecuteResult []ExecutePair `yaml:"code_execute_result"`

	// CodeDisplayData lists code samples whose first output message must be
	// display_data with well-formed, empty per-MIME-type metadata.
	CodeDisplayData []string `yaml:"code_display_data"`
}

type manifest struct {
	Kernels []Config `yaml:"kernels"`
}

// LoadConfigFile reads and validates a YAML kernel manifest.
func LoadConfigFile(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	configs, err := ParseConfigs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return configs, nil
}

// ParseConfigs parses a YAML kernel manifest. Each kernel name may appear at
// most once; a duplicate entry is a configuration error, not a second suite.
func ParseConfigs(data []byte) ([]Config, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("malformed kernel manifest: %w", err)
	}
	if len(m.Kernels) == 0 {
		return nil, errors.New("kernel manifest does not define any kernels")
	}
	seen := make(map[string]bool)
	for i, cfg := range m.Kernels {
		if cfg.KernelName == "" {
			return nil, fmt.Errorf("kernel entry %d: kernel_name is required", i+1)
		}
		if cfg.LanguageName == "" {
			return nil, fmt.Errorf("kernel %q: language_name is required", cfg.KernelName)
		}
		for j, pair := range cfg.CodeExecuteResult {
			if pair.Code == "" {
				return nil, fmt.Errorf("kernel %q: code_execute_result entry %d has no code", cfg.KernelName, j+1)
			}
		}
		if seen[cfg.KernelName] {
			return nil, fmt.Errorf("duplicate configuration for kernel %q: each kernel name may be configured once", cfg.KernelName)
		}
		seen[cfg.KernelName] = true
	}
	return m.Kernels, nil
}
