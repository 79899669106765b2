// Package kerneltests contains the Jupyter kernel conformance suite: the
// typed per-kernel configuration, a domain-specific test API (T) on top of
// the generic framework package, and the test groups the suite runs against
// every configured kernel.
package kerneltests
