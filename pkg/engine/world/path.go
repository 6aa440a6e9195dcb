package world

// Path returns the directions leading from one cell to another through absent
// walls, or nil when to is unreachable. In a perfect maze the path is unique.
func (g *Grid) Path(from, to Pos) []Direction {
	if !g.Contains(from) || !g.Contains(to) {
		return nil
	}
	if from == to {
		return []Direction{}
	}

	// came records the direction used to enter each discovered cell
	came := map[Pos]Direction{}
	queue := []Pos{from}
	found := false

	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir)
			if next == from || !g.Contains(next) || !g.Passable(current, dir) {
				continue
			}
			if _, seen := came[next]; seen {
				continue
			}
			came[next] = dir
			if next == to {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}

	if !found {
		return nil
	}

	var reversed []Direction
	for p := to; p != from; {
		dir := came[p]
		reversed = append(reversed, dir)
		p = p.Step(dir.Opposite())
	}

	path := make([]Direction, len(reversed))
	for i, dir := range reversed {
		path[len(reversed)-1-i] = dir
	}
	return path
}
