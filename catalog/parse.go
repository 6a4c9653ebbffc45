package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// required lists the header columns a project table must carry.
var required = []string{"week", "topic", "project", "description", "command"}

// ParseFile parses the project table from a markdown file.
func ParseFile(path string) ([]Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTable, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse extracts the project table from a markdown document: the first
// pipe table whose header contains all required columns (extra columns
// are ignored). Returns ErrNoTable when none exists, ErrMalformedRow for
// unparsable rows, and ErrDuplicateProject for repeated project names.
func Parse(r io.Reader) ([]Project, error) {
	scanner := bufio.NewScanner(r)

	var (
		cols     map[string]int
		inTable  bool
		projects []Project
		seen     = make(map[string]int)
		line     int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(text, "|") {
			if inTable {
				break // table ended
			}
			continue
		}
		cells := splitRow(text)

		if !inTable {
			header := headerIndex(cells)
			if header == nil {
				continue // a pipe table, but not the project table
			}
			cols = header
			inTable = true
			continue
		}
		if isSeparator(cells) {
			continue
		}

		p, err := parseRow(cells, cols, line)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q on lines %d and %d", ErrDuplicateProject, p.Name, prev, line)
		}
		seen[p.Name] = line
		projects = append(projects, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTable, err)
	}
	if !inTable {
		return nil, ErrNoTable
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("%w: table has a header but no rows", ErrNoTable)
	}

	return projects, nil
}

// splitRow breaks "| a | b |" into its trimmed cells.
func splitRow(text string) []string {
	text = strings.Trim(text, "|")
	parts := strings.Split(text, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}

	return cells
}

// headerIndex maps required column names to cell positions, or nil when
// any required column is missing.
func headerIndex(cells []string) map[string]int {
	idx := make(map[string]int, len(cells))
	for i, c := range cells {
		idx[strings.ToLower(c)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil
		}
	}

	return idx
}

// isSeparator recognizes the |---|---| divider under the header.
func isSeparator(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			continue
		}
		if strings.Trim(c, ":-") != "" {
			return false
		}
	}

	return true
}

// parseRow converts one table row into a Project.
func parseRow(cells []string, cols map[string]int, line int) (Project, error) {
	get := func(name string) (string, error) {
		i := cols[name]
		if i >= len(cells) {
			return "", fmt.Errorf("%w: line %d lacks %q cell", ErrMalformedRow, line, name)
		}

		return cells[i], nil
	}

	var (
		p   Project
		err error
	)
	weekText, err := get("week")
	if err != nil {
		return p, err
	}
	if p.Week, err = strconv.Atoi(weekText); err != nil {
		return p, fmt.Errorf("%w: line %d: week %q is not a number", ErrMalformedRow, line, weekText)
	}
	if p.Topic, err = get("topic"); err != nil {
		return p, err
	}
	if p.Name, err = get("project"); err != nil {
		return p, err
	}
	if p.Description, err = get("description"); err != nil {
		return p, err
	}
	cmd, err := get("command")
	if err != nil {
		return p, err
	}
	p.Command = strings.Trim(cmd, "`")
	if p.Name == "" || p.Command == "" {
		return p, fmt.Errorf("%w: line %d: project and command must be non-empty", ErrMalformedRow, line)
	}

	return p, nil
}
