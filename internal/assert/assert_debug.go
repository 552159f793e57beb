//go:build debug

package assert

import "fmt"

// Invariant panics with msg when ok is false. Only compiled in with -tags debug.
//
// Use it for postconditions of constructors, never for validating input:
//
//	assert.Invariant(len(session.Services) == 1, "generated session must have exactly one service")
func Invariant(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("INVARIANT VIOLATION: %s", msg))
	}
}
