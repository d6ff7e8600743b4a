// Package groundwork is the root of the module.
//
// The package currently holds only the sanity checks that verify the test
// suite itself is wired up: go test discovers the cases, testify assertions
// fire, and the logging sink receives output. Application packages land
// under internal/ as they are built.
package groundwork
