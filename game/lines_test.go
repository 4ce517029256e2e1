package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSkipsRowWithGap(t *testing.T) {
	g := New(nil)
	for x := 1; x < Width; x++ {
		g.Grid()[x][15] = Red
	}

	assert.Equal(t, 0, g.DetectCompletedRows())
	for x := 1; x < Width; x++ {
		assert.Equal(t, Red, g.Cell(x, 15))
	}

	g.Grid()[0][15] = Green
	assert.Equal(t, 1, g.DetectCompletedRows())
	for x := 0; x < Width; x++ {
		assert.Equal(t, Blink, g.Cell(x, 15))
	}
}

func TestDetectMarksSeveralRows(t *testing.T) {
	g := New(nil)
	g.Grid().FillRow(3, Yellow)
	g.Grid().FillRow(12, Aqua)
	g.Grid().FillRow(13, Aqua)
	g.Grid()[Width-1][13] = Empty

	assert.Equal(t, 2, g.DetectCompletedRows())
	assert.True(t, g.Grid().RowMarked(3))
	assert.True(t, g.Grid().RowMarked(12))
	assert.False(t, g.Grid().RowMarked(13))
	assert.Equal(t, Empty, g.Cell(Width-1, 13))
}

func TestCollapseSingleRow(t *testing.T) {
	g := New(nil)
	for y := 0; y < 10; y++ {
		g.Grid()[y%Width][y] = Cell(y%ColorCount + 1)
	}
	g.Grid().FillRow(10, Blink)
	g.Grid()[2][11] = Fuchsia
	before := *g.Grid()

	assert.Equal(t, 1, g.CollapseMarkedRows())

	for x := 0; x < Width; x++ {
		assert.Equal(t, Empty, g.Cell(x, 0))
		assert.Equal(t, before[x][9], g.Cell(x, 10))
		for y := 1; y <= 10; y++ {
			assert.Equal(t, before[x][y-1], g.Cell(x, y))
		}
		for y := 11; y < Height; y++ {
			assert.Equal(t, before[x][y], g.Cell(x, y))
		}
	}
	assert.Equal(t, 1, g.Stats().RowsCleared)
}

func TestCollapseSeveralRows(t *testing.T) {
	g := New(nil)
	g.Grid()[1][2] = Red
	g.Grid()[6][5] = Blue
	g.Grid().FillRow(6, Blink)
	g.Grid()[3][7] = Green
	g.Grid().FillRow(9, Blink)
	g.Grid().FillRow(15, Blink)

	require.Equal(t, 3, g.CollapseMarkedRows())

	for y := 0; y < Height; y++ {
		assert.False(t, g.Grid().RowMarked(y), "row %d", y)
	}
	// Row 2 sits above three collapsed rows, row 5 above three, row 7 above two.
	assert.Equal(t, Red, g.Cell(1, 5))
	assert.Equal(t, Blue, g.Cell(6, 8))
	assert.Equal(t, Green, g.Cell(3, 9))

	filled := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if g.Cell(x, y) != Empty {
				filled++
			}
		}
	}
	assert.Equal(t, 3, filled)
}

func TestCollapseAdjacentRows(t *testing.T) {
	g := New(nil)
	g.Grid()[4][12] = Aqua
	g.Grid().FillRow(13, Blink)
	g.Grid().FillRow(14, Blink)
	g.Grid()[0][15] = Red

	require.Equal(t, 2, g.CollapseMarkedRows())
	assert.Equal(t, Aqua, g.Cell(4, 14))
	assert.Equal(t, Red, g.Cell(0, 15))
	assert.Equal(t, Empty, g.Cell(4, 12))
}

func TestLossSweepFillsUpward(t *testing.T) {
	g := New(nil)
	g.Grid()[4][0] = Red
	g.Grid()[2][8] = Green
	g.Grid().FillRow(Height-1, Blink)

	g.lossSweep()

	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			assert.Equal(t, Blink, g.Cell(x, y))
		}
	}
}

func TestLossSweepWithoutBlinkRowIsNoop(t *testing.T) {
	g := New(nil)
	g.Grid()[3][15] = Red
	before := *g.Grid()

	g.lossSweep()
	assert.Equal(t, before, *g.Grid())
}
