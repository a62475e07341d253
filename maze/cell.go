package maze

import "fmt"

// Cell is a grid coordinate in block units.
type Cell struct {
	X int `json:"x"` // Column of the cell
	Y int `json:"y"` // Row of the cell
}

// Add returns the cell translated by the given offset.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Neighbors returns the four orthogonal neighbors of the cell.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a cardinal heading. NoDirection marks the end of a path.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	NoDirection
)

var directionNames = [...]string{"North", "East", "South", "West", "NoDirection"}

func (d Direction) String() string {
	if d < North || d > NoDirection {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the reverse heading. NoDirection is its own opposite.
func (d Direction) Opposite() Direction {
	if d == NoDirection {
		return NoDirection
	}
	return (d + 2) % 4
}

// ParseDirection maps a direction name (as produced by String) back to its value.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return NoDirection, fmt.Errorf("unknown direction %q", s)
}

// Path is an ordered sequence of cells: a start cell followed by T-units of
// Channel, Branch, Terminal and End cells.
type Path []Cell

// Bounds returns the bounding box of the path. An empty path yields zeros.
func (p Path) Bounds() (minX, minY, maxX, maxY int) {
	for i, c := range p {
		if i == 0 {
			minX, maxX = c.X, c.X
			minY, maxY = c.Y, c.Y
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}

// Units returns the number of complete T-units in the path.
func (p Path) Units() int {
	if len(p) < 1 {
		return 0
	}
	return (len(p) - 1) / unitSize
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}
