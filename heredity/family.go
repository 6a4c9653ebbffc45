package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadFamily reads family data from a CSV file with the header
// name,mother,father,trait. Both parent fields must be blank together or
// name people present in the same file; trait is "1", "0", or blank for
// unobserved. The result is validated before being returned.
func LoadFamily(path string) (Family, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrBadData, path, err)
	}
	defer f.Close()

	return ReadFamily(f)
}

// ReadFamily parses family CSV data from r. See LoadFamily for the format.
func ReadFamily(r io.Reader) (Family, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrBadData, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, want := range []string{"name", "mother", "father", "trait"} {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("%w: header lacks %q column", ErrBadData, want)
		}
	}

	family := make(Family)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadData, line, err)
		}

		p := Person{
			Name:   record[col["name"]],
			Mother: record[col["mother"]],
			Father: record[col["father"]],
		}
		if p.Name == "" {
			return nil, fmt.Errorf("%w: line %d: empty name", ErrBadData, line)
		}
		if _, dup := family[p.Name]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate person %q", ErrBadData, line, p.Name)
		}
		switch record[col["trait"]] {
		case "1":
			yes := true
			p.Trait = &yes
		case "0":
			no := false
			p.Trait = &no
		case "":
			// unobserved
		default:
			return nil, fmt.Errorf("%w: line %d: trait must be 0, 1, or blank", ErrBadData, line)
		}
		family[p.Name] = p
	}

	if err := family.Validate(); err != nil {
		return nil, err
	}

	return family, nil
}

// Validate checks parental references: both parents blank, or both
// naming members of the family. Returns ErrEmptyFamily or
// ErrUnknownParent on violation.
func (f Family) Validate() error {
	if len(f) == 0 {
		return ErrEmptyFamily
	}
	for name, p := range f {
		if (p.Mother == "") != (p.Father == "") {
			return fmt.Errorf("%w: %q lists only one parent", ErrUnknownParent, name)
		}
		if p.Mother == "" {
			continue
		}
		if _, ok := f[p.Mother]; !ok {
			return fmt.Errorf("%w: %q's mother %q not in family", ErrUnknownParent, name, p.Mother)
		}
		if _, ok := f[p.Father]; !ok {
			return fmt.Errorf("%w: %q's father %q not in family", ErrUnknownParent, name, p.Father)
		}
	}

	return nil
}

// Names returns the family's member names in unspecified order.
func (f Family) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}

	return names
}
