// Package check holds repository-wide static checks run as tests.
//
// The checks load the module's packages with golang.org/x/tools/go/packages
// and fail when a package outside internal/dl reaches for the low-level
// loading APIs directly.
package check
