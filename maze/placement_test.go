package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlaceable(t *testing.T) {
	t.Run("Empty path accepts cells inside the grid", func(t *testing.T) {
		assert.True(t, IsPlaceable(Path{}, Cell{X: 2, Y: 2}, 9, 9))
	})

	t.Run("Overshoot within margin is allowed", func(t *testing.T) {
		path := Path{{X: 0, Y: 0}}
		// Span of 2 leaves 7 of 9 columns.
		assert.True(t, IsPlaceable(path, Cell{X: -2, Y: 0}, 9, 9))
		assert.True(t, IsPlaceable(path, Cell{X: 0, Y: -2}, 9, 9))
	})

	t.Run("Overshoot below margin is rejected on every side", func(t *testing.T) {
		path := Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
		// Span 0..3 on a width of 6: going to -1 leaves 6-4=2 < 3.
		assert.False(t, IsPlaceable(path, Cell{X: -1, Y: 0}, 6, 9))
		assert.False(t, IsPlaceable(path, Cell{X: 4, Y: 0}, 6, 9))

		column := Path{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}
		assert.False(t, IsPlaceable(column, Cell{X: 0, Y: -1}, 9, 6))
		assert.False(t, IsPlaceable(column, Cell{X: 0, Y: 4}, 9, 6))
	})

	t.Run("Cells inside the bounding box skip the bounds check", func(t *testing.T) {
		path := Path{{X: 0, Y: 0}, {X: 4, Y: 4}}
		assert.True(t, IsPlaceable(path, Cell{X: 2, Y: 2}, 5, 5))
	})

	t.Run("Touching the last cell is allowed", func(t *testing.T) {
		path := Path{{X: 0, Y: 0}, {X: 0, Y: -1}}
		assert.True(t, IsPlaceable(path, Cell{X: 0, Y: -2}, 9, 9))
	})

	t.Run("Touching an earlier cell is rejected", func(t *testing.T) {
		path := Path{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -2}}
		assert.False(t, IsPlaceable(path, Cell{X: 1, Y: 0}, 9, 9))
		assert.False(t, IsPlaceable(path, Cell{X: -1, Y: -1}, 9, 9))
	})

	t.Run("Path is not modified", func(t *testing.T) {
		path := Path{{X: 0, Y: 0}, {X: 0, Y: -1}}
		before := path.Clone()
		IsPlaceable(path, Cell{X: 5, Y: 5}, 9, 9)
		assert.Equal(t, before, path)
	})
}
