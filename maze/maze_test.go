package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter(t *testing.T) {
	t.Run("Moves the minimum to one", func(t *testing.T) {
		path := Path{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: -3, Y: -2}, {X: 4, Y: 5}}
		Center(path)
		assert.Equal(t, Path{{X: 4, Y: 3}, {X: 4, Y: 2}, {X: 1, Y: 1}, {X: 8, Y: 8}}, path)
	})

	t.Run("Empty path is untouched", func(t *testing.T) {
		path := Path{}
		Center(path)
		assert.Empty(t, path)
	})

	t.Run("Centering twice is stable", func(t *testing.T) {
		path := Path{{X: -2, Y: 7}, {X: 3, Y: 9}}
		Center(path)
		once := path.Clone()
		Center(path)
		assert.Equal(t, once, path)
	})
}

func TestRasterize(t *testing.T) {
	t.Run("Path cells are open and walls are colored", func(t *testing.T) {
		path := Generate(9, 9, newRand(2))
		grid, err := Rasterize(path, 9, 9, newRand(2))
		require.NoError(t, err)

		onPath := make(map[Cell]bool, len(path))
		for _, c := range path {
			onPath[c] = true
		}
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				b := grid.Blocks[y][x]
				c := Cell{X: x, Y: y}
				assert.Equal(t, onPath[c], b.Open, "cell %s", c)
				if !b.Open {
					assert.NotEqual(t, Black, b.Color, "cell %s", c)
					assert.LessOrEqual(t, int(b.Color), int(Grey))
				}
			}
		}
	})

	t.Run("Border stays closed", func(t *testing.T) {
		path := Generate(9, 9, newRand(11))
		grid, err := Rasterize(path, 9, 9, newRand(11))
		require.NoError(t, err)
		for i := 0; i < 9; i++ {
			assert.False(t, grid.IsOpen(Cell{X: i, Y: 0}))
			assert.False(t, grid.IsOpen(Cell{X: 0, Y: i}))
			assert.False(t, grid.IsOpen(Cell{X: i, Y: 8}))
			assert.False(t, grid.IsOpen(Cell{X: 8, Y: i}))
		}
	})

	t.Run("Goal faces away from the previous cell", func(t *testing.T) {
		cases := []struct {
			name string
			prev Cell
			face Direction
		}{
			{"From the west", Cell{X: 1, Y: 2}, East},
			{"From the east", Cell{X: 3, Y: 2}, West},
			{"From the north", Cell{X: 2, Y: 1}, South},
			{"From the south", Cell{X: 2, Y: 3}, North},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				grid, err := Rasterize(Path{tc.prev, {X: 2, Y: 2}}, 5, 5, newRand(1))
				require.NoError(t, err)
				require.NotNil(t, grid.Goal)
				assert.Equal(t, Cell{X: 2, Y: 2}, grid.Goal.Cell)
				assert.Equal(t, tc.face, grid.Goal.Face)
			})
		}
	})

	t.Run("Single cell has no goal", func(t *testing.T) {
		grid, err := Rasterize(Path{{X: 1, Y: 1}}, 5, 5, newRand(1))
		require.NoError(t, err)
		assert.Nil(t, grid.Goal)
	})

	t.Run("Cell outside the grid", func(t *testing.T) {
		_, err := Rasterize(Path{{X: 0, Y: 0}, {X: 0, Y: -1}}, 5, 5, newRand(1))
		assert.ErrorIs(t, err, ErrCellOutOfGrid)
	})

	t.Run("Same source gives the same colors", func(t *testing.T) {
		path := Generate(9, 9, newRand(3))
		a, err := Rasterize(path, 9, 9, newRand(3))
		require.NoError(t, err)
		b, err := Rasterize(path, 9, 9, newRand(3))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("String marks walls, corridors and the goal", func(t *testing.T) {
		grid, err := Rasterize(Path{{X: 1, Y: 1}, {X: 1, Y: 2}}, 3, 4, newRand(1))
		require.NoError(t, err)
		assert.Equal(t, "###\n#.#\n#G#\n###\n", grid.String())
	})
}

func TestNew(t *testing.T) {
	t.Run("Rejects invalid dimensions", func(t *testing.T) {
		for _, dim := range [][2]int{{4, 9}, {9, 4}, {0, 0}, {MaxDimension + 1, 9}} {
			_, err := New(dim[0], dim[1], newRand(1))
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("Builds path and grid from one source", func(t *testing.T) {
		m, err := New(9, 9, newRand(2))
		require.NoError(t, err)
		assert.Equal(t, Generate(9, 9, newRand(2)), m.Path)

		start, ok := m.Start()
		assert.True(t, ok)
		assert.Equal(t, m.Path[0], start)

		goal, ok := m.Goal()
		assert.True(t, ok)
		require.NotNil(t, m.Grid.Goal)
		assert.Equal(t, goal, m.Grid.Goal.Cell)
		assert.Equal(t, 9, strings.Count(m.String(), "\n"))
	})

	t.Run("Rejects partial T-units", func(t *testing.T) {
		path := Generate(9, 9, newRand(2))
		for _, n := range []int{2, 3, 4, len(path) - 1} {
			_, err := FromPath(path[:n], 9, 9, newRand(2))
			assert.ErrorIs(t, err, ErrMalformedPath, "%d cells", n)
		}
		for _, n := range []int{0, 1, 5, len(path)} {
			_, err := FromPath(path[:n], 9, 9, newRand(2))
			assert.NoError(t, err, "%d cells", n)
		}
	})

	t.Run("Empty path has no start", func(t *testing.T) {
		m := &TMaze{}
		_, ok := m.Start()
		assert.False(t, ok)
		_, ok = m.Goal()
		assert.False(t, ok)
	})
}

func TestDirection(t *testing.T) {
	for d := North; d <= NoDirection; d++ {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	_, err := ParseDirection("Up")
	assert.Error(t, err)

	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, NoDirection, NoDirection.Opposite())
}

func TestParams(t *testing.T) {
	s := Params{Width: 9, Height: 9, Seed: 2}
	require.NoError(t, s.Validate())
	assert.Equal(t, Generate(9, 9, newRand(2)), s.Path())

	assert.ErrorIs(t, Params{Width: 4, Height: 9}.Validate(), ErrInvalidDimensions)
	assert.ErrorIs(t, Params{Width: 9, Height: MaxDimension + 1}.Validate(), ErrInvalidDimensions)
}
