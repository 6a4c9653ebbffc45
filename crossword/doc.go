// Package crossword fills crossword grids from a word list by solving a
// constraint-satisfaction problem: node consistency, AC-3 arc consistency,
// then backtracking search with MRV and least-constraining-value ordering.
//
// What & How:
//
//	A Crossword couples a structure (a text grid whose '_' cells are
//	fillable) with a lexicon. Variables are the maximal horizontal and
//	vertical runs of at least two open cells; two variables crossing in a
//	cell constrain each other to agree on that letter, and all variables
//	must take distinct words.
//
//	Generator.Solve first prunes domains by word length (node
//	consistency) and by pairwise letter agreement (AC-3), then searches:
//	variables are picked by fewest remaining values (ties by degree, then
//	position), values by how few neighbor options they eliminate (ties
//	lexicographic), so a given puzzle always solves the same way.
//
// Rendering:
//
//	Assignment.Render draws the solved grid with '█' for blocked cells,
//	matching the course exercise's terminal output.
//
// See LoadCrossword to read the structure and lexicon from files.
package crossword
