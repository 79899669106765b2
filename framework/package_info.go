// Package framework contains the generic test-runner infrastructure used by
// the kernel conformance suite.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and
// to accumulate success/failure results, outside of the Go test runner.
//
// 2. Tests can be filtered by name with regular expressions, and each test
// captures its own debug output so that it can be shown selectively after
// the test finishes.
//
// The domain-specific code that knows what is being tested (the kerneltests
// package) is responsible for managing kernel sessions and providing a
// domain-specific test API on top of the test context.
package framework
