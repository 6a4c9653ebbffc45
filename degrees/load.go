package degrees

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Graph is the loaded person/movie data set with both directions of the
// star relation indexed. Construct one with Load; the zero value is not
// usable. A Graph is immutable after Load and safe for concurrent reads.
type Graph struct {
	people map[string]Person
	movies map[string]Movie

	names     map[string][]string // lowercased name → person IDs, sorted
	moviesFor map[string][]string // person ID → movie IDs, sorted
	starsIn   map[string][]string // movie ID → person IDs, sorted
}

// Load reads people.csv, movies.csv, and stars.csv from dir.
// Star records referencing unknown people or movies are rejected with
// ErrBadData.
func Load(dir string) (*Graph, error) {
	g := &Graph{
		people:    make(map[string]Person),
		movies:    make(map[string]Movie),
		names:     make(map[string][]string),
		moviesFor: make(map[string][]string),
		starsIn:   make(map[string][]string),
	}

	err := readCSV(filepath.Join(dir, "people.csv"), []string{"id", "name", "birth"}, func(rec map[string]string) error {
		p := Person{ID: rec["id"], Name: rec["name"], Birth: rec["birth"]}
		if p.ID == "" {
			return fmt.Errorf("%w: person with empty id", ErrBadData)
		}
		if _, dup := g.people[p.ID]; dup {
			return fmt.Errorf("%w: duplicate person id %q", ErrBadData, p.ID)
		}
		g.people[p.ID] = p
		key := strings.ToLower(p.Name)
		g.names[key] = append(g.names[key], p.ID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, "movies.csv"), []string{"id", "title", "year"}, func(rec map[string]string) error {
		m := Movie{ID: rec["id"], Title: rec["title"], Year: rec["year"]}
		if m.ID == "" {
			return fmt.Errorf("%w: movie with empty id", ErrBadData)
		}
		if _, dup := g.movies[m.ID]; dup {
			return fmt.Errorf("%w: duplicate movie id %q", ErrBadData, m.ID)
		}
		g.movies[m.ID] = m

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, "stars.csv"), []string{"person_id", "movie_id"}, func(rec map[string]string) error {
		pid, mid := rec["person_id"], rec["movie_id"]
		if _, ok := g.people[pid]; !ok {
			return fmt.Errorf("%w: star references unknown person %q", ErrBadData, pid)
		}
		if _, ok := g.movies[mid]; !ok {
			return fmt.Errorf("%w: star references unknown movie %q", ErrBadData, mid)
		}
		g.moviesFor[pid] = append(g.moviesFor[pid], mid)
		g.starsIn[mid] = append(g.starsIn[mid], pid)

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic neighbor expansion order for BFS.
	for _, ids := range g.names {
		sort.Strings(ids)
	}
	for _, ids := range g.moviesFor {
		sort.Strings(ids)
	}
	for _, ids := range g.starsIn {
		sort.Strings(ids)
	}

	return g, nil
}

// readCSV streams a headered CSV file, passing each record to fn as a
// column→value map.
func readCSV(path string, want []string, fn func(map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %q: %v", ErrBadData, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%w: %q missing header: %v", ErrBadData, path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range want {
		if _, ok := col[name]; !ok {
			return fmt.Errorf("%w: %q lacks column %q", ErrBadData, path, name)
		}
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %q line %d: %v", ErrBadData, path, line, err)
		}
		rec := make(map[string]string, len(want))
		for _, name := range want {
			rec[name] = record[col[name]]
		}
		if err = fn(rec); err != nil {
			return err
		}
	}

	return nil
}

// Person returns the record for a person ID.
func (g *Graph) Person(id string) (Person, bool) {
	p, ok := g.people[id]

	return p, ok
}

// Movie returns the record for a movie ID.
func (g *Graph) Movie(id string) (Movie, bool) {
	m, ok := g.movies[id]

	return m, ok
}

// PersonIDs returns the IDs of every person with the given name
// (case-insensitive), sorted; ambiguity is the caller's to resolve.
func (g *Graph) PersonIDs(name string) []string {
	ids := g.names[strings.ToLower(name)]
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}

// Movies returns the sorted movie IDs a person starred in.
func (g *Graph) Movies(personID string) []string {
	ids := g.moviesFor[personID]
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}

// Stars returns the sorted person IDs starring in a movie.
func (g *Graph) Stars(movieID string) []string {
	ids := g.starsIn[movieID]
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}
