package maze

const (
	// MinDimension is the smallest grid width or height that can hold a T-unit.
	MinDimension = 5

	// generations is the number of independent attempts; the longest path wins.
	generations = 10

	// unitSize is the number of cells appended per T-unit.
	unitSize = 4
)

// Rand is the pseudorandom source used for generation. *math/rand.Rand
// satisfies it.
type Rand interface {
	Int() int
	Intn(n int) int
}

// unitOffsets holds, per heading, the offsets from the start cell of the
// left arm tip, the channel cell, the branch cell and the right arm tip.
var unitOffsets = [4][4]Cell{
	North: {{X: -1, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	East:  {{X: 2, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: -1}},
	South: {{X: -1, Y: -2}, {X: 0, Y: -1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	West:  {{X: -2, Y: 1}, {X: -1, Y: 0}, {X: -2, Y: 0}, {X: -2, Y: -1}},
}

// Generate builds a centered T-maze path for a width x height grid.
// Grids smaller than MinDimension on either axis yield an empty path.
func Generate(width, height int, rng Rand) Path {
	if width < MinDimension || height < MinDimension {
		return Path{}
	}

	var best Path
	for i := 0; i < generations; i++ {
		b := &builder{
			path:   Path{{X: 0, Y: 0}},
			width:  width,
			height: height,
			rng:    rng,
		}
		b.extend(South)
		if len(b.path) > len(best) {
			best = b.path
		}
	}

	Center(best)
	return best
}

// builder owns the append-only path of a single generation attempt.
type builder struct {
	path   Path
	width  int
	height int
	rng    Rand
}

// extend appends one T-unit heading away from the last cell and keeps growing
// the chain from the unit's end cell. It returns false only when the unit
// itself could not be placed, in which case nothing was appended.
func (b *builder) extend(heading Direction) bool {
	start := b.path[len(b.path)-1]
	offsets := unitOffsets[heading]
	tip1 := start.Add(offsets[0])
	channel := start.Add(offsets[1])
	branch := start.Add(offsets[2])
	tip2 := start.Add(offsets[3])

	for _, c := range [...]Cell{tip1, channel, branch, tip2} {
		if !IsPlaceable(b.path, c, b.width, b.height) {
			return false
		}
	}

	b.path = append(b.path, channel, branch, Cell{}, Cell{})
	t, e := len(b.path)-2, len(b.path)-1

	var next Direction
	coin := b.rng.Int() % 2
	switch heading {
	case North, South:
		if coin == 0 {
			next = East
			b.path[t], b.path[e] = tip1, tip2
		} else {
			next = West
			b.path[t], b.path[e] = tip2, tip1
		}
	case East, West:
		if coin == 0 {
			next = South
			b.path[t], b.path[e] = tip1, tip2
		} else {
			next = North
			b.path[t], b.path[e] = tip2, tip1
		}
	}

	if b.extend(next) {
		return true
	}

	// Only one alternate heading is tried and the unit stands either way.
	b.path[t], b.path[e] = b.path[e], b.path[t]
	b.extend(next.Opposite())
	return true
}
