package framework

import (
	"fmt"
	"io"
	"strings"
)

// Results is the accumulated outcome of a full run of the test suite.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) SkipCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

// TestID identifies a test or subtest as the path of group and test names
// leading to it.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a human-readable summary of a test run.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(dest, "All tests passed (%d run, %d skipped)\n",
			len(results.Tests)-results.SkipCount(), results.SkipCount())
		return
	}
	fmt.Fprintf(dest, "FAILED TESTS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		fmt.Fprintf(dest, "  * %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(dest, "      %s\n", line)
			}
		}
	}
}
