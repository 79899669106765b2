// Package echo implements the trivial echo example kernel: every executed
// cell produces an execute_result whose text is the submitted code, unchanged.
package echo

import (
	"github.com/jupyterkit/kernel-contract-tests/kernel"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Info() kernel.KernelInfo {
	return kernel.KernelInfo{
		ProtocolVersion:       kernel.ProtocolVersion,
		Implementation:        "iecho",
		ImplementationVersion: "1.0",
		LanguageName:          "Echo",
		LanguageVersion:       "1.0",
		MIMEType:              "text/plain",
		FileExtension:         ".txt",
		Banner:                "Echo kernel - every cell evaluates to itself",
	}
}

func (b *Backend) Execute(code string, pub kernel.Publisher) (string, bool, error) {
	return code, true, nil
}
