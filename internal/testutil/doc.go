// Package testutil provides reproducible test signals and tolerance
// assertions shared by the siglab test suites.
package testutil
