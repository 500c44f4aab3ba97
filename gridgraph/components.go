package gridgraph

// ConnectedComponents finds all contiguous regions of cells for which
// member(idx) is true, according to gg.Conn connectivity.
// Components are returned in scan order of their first cell; each component
// lists its cell indices in BFS order from that cell.
//
// To convert an index back to (i,j), use Coordinate(idx).
//
// Time:   O(Rows·Cols·d), where d = 4 or 8.
// Memory: O(Rows·Cols) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(member func(idx int) bool) [][]int {
	if member == nil {
		return nil
	}
	seen := make([]bool, gg.Len())
	var comps [][]int

	for i0 := 0; i0 < gg.Len(); i0++ {
		if seen[i0] || !member(i0) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ui, uj := gg.Coordinate(queue[qi])
			for _, d := range gg.offsets {
				vi, vj := ui+d[0], uj+d[1]
				if !gg.InBounds(vi, vj) {
					continue
				}
				v := gg.Index(vi, vj)
				if !seen[v] && member(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
