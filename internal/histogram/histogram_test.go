package histogram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	h := New(0, 10, 10)
	for i := 0; i < 10; i++ {
		h.Observe(float64(i) + 0.5)
	}
	for i, c := range h.Counts {
		assert.Equal(t, 1, c, "bucket %d", i)
	}
	assert.Equal(t, 10, h.Total())
	assert.Zero(t, h.Clipped)
}

func TestObserveClipped(t *testing.T) {
	h := New(0, 1, 4)
	h.Observe(-0.1)
	h.Observe(1.0) // upper bound is exclusive
	h.Observe(0.5)
	assert.Equal(t, 2, h.Clipped)
	assert.Equal(t, 3, h.Total())
}

func TestObserveUpperEdgeRounding(t *testing.T) {
	// A value just under Max must land in the last bucket, not panic.
	h := New(0, 1, 3)
	h.Observe(0.9999999999999999)
	assert.Equal(t, 1, h.Counts[2])
}

func TestRender(t *testing.T) {
	h := New(0, 2, 2)
	h.Observe(0.5)
	h.Observe(1.5)
	h.Observe(1.5)

	out := h.Render(10, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	// Fullest bucket spans the requested width.
	assert.Equal(t, 10, strings.Count(lines[1], "█"))
	assert.Equal(t, 5, strings.Count(lines[0], "█"))
	assert.Contains(t, lines[0], " 1")
	assert.Contains(t, lines[1], " 2")
}

func TestRenderEmpty(t *testing.T) {
	h := New(0, 1, 4)
	out := h.Render(20, false)
	assert.NotEmpty(t, out)
	assert.NotContains(t, out, "█")
}
