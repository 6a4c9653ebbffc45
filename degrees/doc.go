// Package degrees finds how many "degrees of separation" connect two
// actors through shared movie appearances, via breadth-first search over a
// person/movie graph loaded from CSV data.
//
// What & How:
//
//	Load reads people.csv (id,name,birth), movies.csv (id,title,year),
//	and stars.csv (person_id,movie_id) from a directory and indexes both
//	directions of the star relation. Two people are adjacent when they
//	starred in a movie together; ShortestPath runs BFS from the source,
//	expanding co-stars movie by movie in deterministic ID order, and
//	reconstructs the connecting (movie, person) steps.
//
//	Name lookup is case-insensitive and may be ambiguous: PersonIDs
//	returns every matching ID and callers choose (the CLI prompts).
//
// Result shape:
//
//	A path of k Steps means the actors are k degrees apart; an empty path
//	means source and target are the same person; ErrNotConnected reports
//	disjoint components.
//
// See SearchOptions for depth limiting, visit hooks, and cancellation.
package degrees
