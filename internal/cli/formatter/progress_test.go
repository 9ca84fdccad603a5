package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Bounds(t *testing.T) {
	full := RenderProgress(1.0, 10)
	assert.Contains(t, full, "100%")
	assert.Contains(t, full, strings.Repeat(filledBlock, 10))

	empty := RenderProgress(0, 10)
	assert.Contains(t, empty, "0%")
	assert.Contains(t, empty, strings.Repeat(emptyBlock, 10))

	// Out-of-range inputs clamp.
	assert.Contains(t, RenderProgress(-0.5, 10), "0%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
}

func TestRenderProgress_Partial(t *testing.T) {
	bar := RenderProgress(0.45, 10)
	assert.Contains(t, bar, "45%")
	assert.Contains(t, bar, strings.Repeat(filledBlock, 4)+strings.Repeat(emptyBlock, 6))
}

func TestSnapshotBar(t *testing.T) {
	assert.Contains(t, SnapshotBar(2, 4, 8), "(2/4)")
	assert.Contains(t, SnapshotBar(2, 4, 8), "50%")
	// Zero total renders an empty bar instead of dividing by zero.
	assert.Contains(t, SnapshotBar(0, 0, 8), "0%")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"NAME", "ROLE"}, [][]string{
		{"Sam", "bdr"},
		{"Lee", "manager"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Sam")
	assert.Contains(t, lines[3], "manager")

	assert.Empty(t, RenderTable(nil, nil))
}
