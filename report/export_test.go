// SPDX-License-Identifier: MIT
// Package: report
//
// export_test.go widens access to the formatting internals for the
// external test package.
package report

// Engineering exposes the engineering-notation formatter to tests.
var Engineering = engineering
