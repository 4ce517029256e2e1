package game

// Playground dimensions of the LED matrix.
const (
	Width  = 8
	Height = 16
)

// Cell is the value stored at one playground position.
type Cell uint8

const (
	Empty Cell = iota
	Red
	Green
	Blue
	Yellow
	Fuchsia
	Aqua

	// Blink marks a completed row pending removal, and the game-over fill.
	Blink Cell = 0xFF
)

// ColorCount is the number of tile colors (Red..Aqua).
const ColorCount = 6

// IsColor reports whether c is one of the six tile colors.
func (c Cell) IsColor() bool { return c >= Red && c <= Aqua }

// Point is an absolute playground coordinate. Y grows downward; negative Y is
// above the visible grid.
type Point struct {
	X int
	Y int
}

// Grid is the playground, column-major. Row Height-1 is the bottom.
type Grid [Width][Height]Cell

// InBounds reports whether p addresses a visible cell.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Clear empties every cell.
func (g *Grid) Clear() {
	*g = Grid{}
}

// Collides reports whether any block is outside the side walls, below the
// floor, or on an occupied visible cell. Blocks above the grid only check x.
func (g *Grid) Collides(blocks [4]Point) bool {
	for _, b := range blocks {
		if b.X < 0 || b.X >= Width || b.Y >= Height {
			return true
		}
		if b.Y >= 0 && g[b.X][b.Y] != Empty {
			return true
		}
	}
	return false
}

// FillRow sets every cell of row y to c.
func (g *Grid) FillRow(y int, c Cell) {
	for x := 0; x < Width; x++ {
		g[x][y] = c
	}
}

// RowFull reports whether row y has no empty cell.
func (g *Grid) RowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if g[x][y] == Empty {
			return false
		}
	}
	return true
}

// RowMarked reports whether row y is blink-marked. Marking always covers the
// whole row, so only the leftmost cell is inspected.
func (g *Grid) RowMarked(y int) bool {
	return g[0][y] == Blink
}
