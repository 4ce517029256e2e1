package game

// DetectCompletedRows marks every full row with Blink and returns how many
// rows were marked.
func (g *Game) DetectCompletedRows() int {
	n := 0
	for y := 0; y < Height; y++ {
		if g.grid.RowFull(y) {
			g.grid.FillRow(y, Blink)
			n++
		}
	}
	return n
}

// CollapseMarkedRows removes each blink-marked row, scanning top to bottom,
// by shifting the rows above it down by one and emptying row 0.
func (g *Game) CollapseMarkedRows() int {
	n := 0
	for k := 0; k < Height; k++ {
		if !g.grid.RowMarked(k) {
			continue
		}
		for x := 0; x < Width; x++ {
			col := &g.grid[x]
			copy(col[1:k+1], col[:k])
			col[0] = Empty
		}
		n++
	}
	g.stats.RowsCleared += n
	return n
}

// lossSweep extends the blink fill one row upward from every blink row,
// scanning from the second-to-last row to the top.
func (g *Game) lossSweep() {
	for j := Height - 2; j >= 0; j-- {
		if !g.grid.RowMarked(j) && g.grid.RowMarked(j+1) {
			g.grid.FillRow(j, Blink)
		}
	}
}
