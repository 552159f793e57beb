//go:build !debug

package assert

// Invariant is a no-op without the debug build tag.
func Invariant(bool, string) {}
