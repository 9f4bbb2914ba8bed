package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

A living cell survives with 2 or 3 living neighbors, a dead cell is born with exactly 3,
every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
