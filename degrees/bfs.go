// Degrees of separation — breadth-first search over the co-star relation.
//
// Description:
//
//	BFS explores people in increasing distance from the source, so the
//	first time the target is dequeued, the chain of (movie, person)
//	parent links is a shortest connection.
//
// Algorithm Outline:
//  1. Seed the queue with the source at depth 0.
//  2. Dequeue a person; for each of their movies (sorted by ID), enqueue
//     every unseen co-star (sorted by ID) one level deeper, remembering
//     the linking movie.
//  3. Stop when the target is found or the queue empties.
//
// Complexity: O(P + S) for P people and S star records reachable from the
// source.
package degrees

import "fmt"

// queueItem pairs a person with their BFS depth.
type queueItem struct {
	personID string
	depth    int
}

// parentLink remembers how a person was first reached.
type parentLink struct {
	movieID  string
	personID string
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *Graph
	opts    SearchOptions
	target  string
	queue   []queueItem
	visited map[string]bool
	parent  map[string]parentLink
}

// ShortestPath returns a minimal chain of (movie, person) steps from
// source to target, applying any number of functional Options.
// An empty (non-nil) path means source == target. Returns
// ErrPersonNotFound for unknown IDs, ErrNotConnected when no chain
// exists (or none within MaxDepth), ErrOptionViolation for bad options,
// or the context error on cancellation.
func (g *Graph) ShortestPath(sourceID, targetID string, opts ...Option) ([]Step, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := g.people[sourceID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, sourceID)
	}
	if _, ok := g.people[targetID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, targetID)
	}
	if sourceID == targetID {
		return []Step{}, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		target:  targetID,
		queue:   []queueItem{{personID: sourceID, depth: 0}},
		visited: map[string]bool{sourceID: true},
		parent:  make(map[string]parentLink),
	}
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotConnected
	}

	return w.pathTo(targetID), nil
}

// loop processes the queue until the target appears, the queue empties,
// or the search is cancelled.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(item.personID, item.depth)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, movieID := range w.graph.moviesFor[item.personID] {
			for _, costar := range w.graph.starsIn[movieID] {
				if w.visited[costar] {
					continue
				}
				w.visited[costar] = true
				w.parent[costar] = parentLink{movieID: movieID, personID: item.personID}
				if costar == w.target {
					return true, nil
				}
				w.queue = append(w.queue, queueItem{personID: costar, depth: nextDepth})
			}
		}
	}

	return false, nil
}

// pathTo reconstructs source→dest steps from the parent links.
func (w *walker) pathTo(dest string) []Step {
	var reversed []Step
	for cur := dest; ; {
		link, ok := w.parent[cur]
		if !ok {
			break
		}
		reversed = append(reversed, Step{MovieID: link.movieID, PersonID: cur})
		cur = link.personID
	}

	path := make([]Step, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}

	return path
}
