//go:build !fdcp_debug

package fdcp

// assertMonotone is a no-op in release builds; see assert_debug.go.
func assertMonotone(index int, old, newDomain Domain) {}
