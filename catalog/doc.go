// Package catalog treats the repository's project index — the README
// table of course exercises — as data: it parses the markdown table into
// Project records and verifies the one property such an index promises,
// namely that every row points at a real project directory and documents
// that directory's entry point.
//
// What & How:
//
//	Parse scans a markdown document for a pipe table whose header carries
//	the Week, Topic, Project, Description, and Command columns (any
//	order, extra columns ignored). Verify then checks each row against a
//	repository root: the directory named by the lowercased project name
//	must exist, and the documented command must invoke it. All
//	violations are reported together, not just the first.
//
// Typical use:
//
//	projects, err := catalog.ParseFile("README.md")
//	...
//	err = catalog.Verify(".", projects)
//
// The aikit CLI exposes this as "aikit catalog verify", suitable for CI.
package catalog
