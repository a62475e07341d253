package maze

// minMargin is the number of cells that must remain free on the far side of the
// grid when a candidate extends the path beyond its current bounding box.
const minMargin = 3

// IsPlaceable reports whether candidate can be appended to path inside a grid
// of the given dimensions.
//
// The bounds check is soft: a candidate may leave the grid as long as the span
// of the path stays small enough to fit once the path is re-centered. The
// adjacency check keeps a wall between corridors by rejecting any candidate
// that touches a path cell other than the last one.
func IsPlaceable(path Path, candidate Cell, width, height int) bool {
	minX, minY, maxX, maxY := 0, 0, width, height
	if len(path) > 0 {
		minX, minY, maxX, maxY = path.Bounds()
	}

	if candidate.X < minX && width-(maxX-candidate.X) < minMargin {
		return false
	}
	if candidate.X > maxX && width-(candidate.X-minX) < minMargin {
		return false
	}
	if candidate.Y < minY && height-(maxY-candidate.Y) < minMargin {
		return false
	}
	if candidate.Y > maxY && height-(candidate.Y-minY) < minMargin {
		return false
	}

	if len(path) == 0 {
		return true
	}
	// The last cell is the legal predecessor of the candidate.
	settled := path[:len(path)-1]
	for _, n := range candidate.Neighbors() {
		for _, c := range settled {
			if c == n {
				return false
			}
		}
	}
	return true
}
