package bubble

// FloodMatch returns the connected set of cells reachable from (row, col)
// following neighbor edges whose bubble either has the target color or is a
// rainbow bubble. Rainbow bubbles match any color and propagate the match
// through themselves. The origin cell is included; the result is empty if
// the origin is unoccupied.
func (g *Grid) FloodMatch(row, col int, target BubbleColor) [][2]int {
	if g.At(row, col) == nil {
		return nil
	}

	visited := map[[2]int]bool{{row, col}: true}
	stack := [][2]int{{row, col}}
	set := make([][2]int, 0, 8)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		set = append(set, cur)

		for _, rc := range g.Neighbors(cur[0], cur[1]) {
			if visited[rc] {
				continue
			}
			b := g.At(rc[0], rc[1])
			if b == nil {
				continue
			}
			if b.Color != target && b.Kind != KindRainbow {
				continue
			}
			visited[rc] = true
			stack = append(stack, rc)
		}
	}

	return set
}

// RemoveDisconnected removes every colored bubble that is no longer attached
// to the anchor row (row 0) and returns the count removed.
//
// Connectivity starts from every occupied anchor-row cell and propagates
// through non-gray occupied bubbles only. Gray obstacles block propagation
// and are themselves never removed by this pass.
func (g *Grid) RemoveDisconnected() int {
	anchored := make(map[[2]int]bool)
	var stack [][2]int

	for c := 0; c < g.RowWidth(0); c++ {
		if g.cells[0][c] != nil {
			rc := [2]int{0, c}
			anchored[rc] = true
			stack = append(stack, rc)
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, rc := range g.Neighbors(cur[0], cur[1]) {
			if anchored[rc] {
				continue
			}
			b := g.At(rc[0], rc[1])
			if b == nil || !b.Color.Matchable() {
				continue
			}
			anchored[rc] = true
			stack = append(stack, rc)
		}
	}

	removed := 0
	for r := 0; r < GridRows; r++ {
		for c := 0; c < g.RowWidth(r); c++ {
			b := g.cells[r][c]
			if b == nil || !b.Color.Matchable() {
				continue
			}
			if !anchored[[2]int{r, c}] {
				g.cells[r][c] = nil
				removed++
			}
		}
	}
	return removed
}

// Blast removes every non-gray occupied bubble within hex-distance 2 of the
// given cell, the origin included, and returns the count removed. Expansion
// is purely geometric: empty cells do not stop the blast.
func (g *Grid) Blast(row, col int) int {
	const blastReach = 2

	dist := map[[2]int]int{{row, col}: 0}
	queue := [][2]int{{row, col}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dist[cur] >= blastReach {
			continue
		}
		for _, rc := range g.Neighbors(cur[0], cur[1]) {
			if _, seen := dist[rc]; seen {
				continue
			}
			dist[rc] = dist[cur] + 1
			queue = append(queue, rc)
		}
	}

	removed := 0
	for rc := range dist {
		b := g.At(rc[0], rc[1])
		if b == nil || !b.Color.Matchable() {
			continue
		}
		g.cells[rc[0]][rc[1]] = nil
		removed++
	}
	return removed
}
