package assert

import "fmt"

// That panics with the formatted message if cond is false. It guards internal
// invariants that indicate a bug in the engine itself, never user error.
func That(cond bool, format string, args ...any) { //nolint:goprintffuncname // it's ok
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
