package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Writes tag, level and message", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", "", &buf)
		require.NoError(t, err)

		l.Info("generated")
		l.Warning("cache miss")
		l.Error("redis down")

		out := buf.String()
		assert.Contains(t, out, "[MAZE]")
		assert.Contains(t, out, "[INFO]\033[0m generated")
		assert.Contains(t, out, "[WARNING]\033[0m cache miss")
		assert.Contains(t, out, "[ERROR]\033[0m redis down")
	})

	t.Run("Nil writer", func(t *testing.T) {
		_, err := New("MAZE", "", nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
