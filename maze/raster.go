package maze

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCellOutOfGrid = errors.New("path cell is outside the grid")

// BasicColor indexes the decorative palette used for wall blocks.
// Black is reserved for the goal marker.
type BasicColor byte

const (
	Black BasicColor = iota
	Red
	Lime
	Yellow
	Blue
	Magenta
	Cyan
	White
	DarkGrey
	Maroon
	Green
	Olive
	Navy
	Purple
	Cobalt
	Grey
)

// paletteSize is the number of basic colors, including black.
const paletteSize = 16

var palette = [paletteSize][3]uint8{
	{0, 0, 0},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{0, 0, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
	{128, 128, 128},
	{128, 0, 0},
	{0, 128, 0},
	{128, 128, 0},
	{0, 0, 128},
	{128, 0, 128},
	{0, 128, 128},
	{192, 192, 192},
}

// RGB returns the red, green and blue components of the color.
func (c BasicColor) RGB() (r, g, b uint8) {
	rgb := palette[int(c)%paletteSize]
	return rgb[0], rgb[1], rgb[2]
}

// Block is a single rasterized grid cell.
type Block struct {
	Open  bool       `json:"open"`            // Open is true for corridor cells
	Color BasicColor `json:"color,omitempty"` // Color of the wall block, unused when open
}

// Goal marks the final path cell. Face is the side of the goal cell the
// marker is attached to, the side an agent arriving along the path faces.
type Goal struct {
	Cell Cell      `json:"cell"`
	Face Direction `json:"face"`
}

// Grid is a width x height raster of a path: open corridor cells, colored
// wall blocks and an optional goal marker.
type Grid struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Blocks [][]Block `json:"blocks"` // Blocks[y][x]
	Goal   *Goal     `json:"goal,omitempty"`
}

// Rasterize paints path onto a width x height grid. Every cell not on the path
// becomes a wall with a random non-black color.
func Rasterize(path Path, width, height int, rng Rand) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	blocks := make([][]Block, height)
	for y := range blocks {
		blocks[y] = make([]Block, width)
	}

	// Colors are drawn x outer, y inner.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			blocks[y][x].Color = BasicColor(rng.Intn(paletteSize-1) + 1)
		}
	}

	g := &Grid{Width: width, Height: height, Blocks: blocks}
	for _, c := range path {
		if !g.InBound(c) {
			return nil, fmt.Errorf("%w: %s in %dx%d", ErrCellOutOfGrid, c, width, height)
		}
		g.Blocks[c.Y][c.X] = Block{Open: true}
	}

	if len(path) > 1 {
		g.Goal = &Goal{
			Cell: path[len(path)-1],
			Face: goalFace(path[len(path)-2], path[len(path)-1]),
		}
	}
	return g, nil
}

// goalFace picks the face of last that is away from prev.
func goalFace(prev, last Cell) Direction {
	switch {
	case prev.X < last.X:
		return East
	case prev.X > last.X:
		return West
	case prev.Y < last.Y:
		return South
	default:
		return North
	}
}

// InBound reports whether c lies inside the grid.
func (g *Grid) InBound(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsOpen reports whether c is an open corridor cell.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBound(c) && g.Blocks[c.Y][c.X].Open
}

// String provides a textual representation of the grid: '#' for walls,
// '.' for corridors and 'G' for the goal.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch {
			case g.Goal != nil && g.Goal.Cell == (Cell{X: x, Y: y}):
				sb.WriteByte('G')
			case g.Blocks[y][x].Open:
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
