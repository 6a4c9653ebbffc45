// Package catalog provides the project-index model and error definitions.
package catalog

import (
	"errors"
	"strings"
)

// Sentinel errors for parsing and verification.
var (
	// ErrNoTable is returned when the document holds no project table.
	ErrNoTable = errors.New("catalog: no project table found")

	// ErrMalformedRow is returned when a table row cannot be parsed.
	ErrMalformedRow = errors.New("catalog: malformed table row")

	// ErrDuplicateProject is returned when two rows share a project name.
	ErrDuplicateProject = errors.New("catalog: duplicate project")

	// ErrInconsistent is returned by Verify when the index disagrees
	// with the repository contents.
	ErrInconsistent = errors.New("catalog: index inconsistent with repository")
)

// Project is one row of the index table.
type Project struct {
	Week        int
	Topic       string
	Name        string
	Description string
	Command     string
}

// Dir returns the project's directory name: the lowercased project name.
func (p Project) Dir() string {
	return strings.ToLower(p.Name)
}
