package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Verify checks the index's consistency property against a repository
// root: every project's directory exists and its documented command
// invokes that directory's entry point (the command mentions the
// directory name as a word). All violations are aggregated into a single
// error wrapping ErrInconsistent; a nil result means the index is
// faithful.
func Verify(root string, projects []Project) error {
	if len(projects) == 0 {
		return fmt.Errorf("%w: empty index", ErrInconsistent)
	}

	var violations []error
	for _, p := range projects {
		dir := p.Dir()
		info, err := os.Stat(filepath.Join(root, dir))
		switch {
		case err != nil:
			violations = append(violations, fmt.Errorf("project %q: directory %q missing", p.Name, dir))
		case !info.IsDir():
			violations = append(violations, fmt.Errorf("project %q: %q is not a directory", p.Name, dir))
		}

		if !commandMentions(p.Command, dir) {
			violations = append(violations, fmt.Errorf("project %q: command %q does not invoke %q", p.Name, p.Command, dir))
		}
	}
	if len(violations) == 0 {
		return nil
	}

	return fmt.Errorf("%w:\n%w", ErrInconsistent, errors.Join(violations...))
}

// commandMentions reports whether dir appears in cmd as its own word
// (field boundaries and path separators both count).
func commandMentions(cmd, dir string) bool {
	for _, field := range strings.Fields(cmd) {
		if field == dir {
			return true
		}
		for _, part := range strings.Split(field, "/") {
			if part == dir {
				return true
			}
		}
	}

	return false
}
