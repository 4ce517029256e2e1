package game

// Rotation directions.
const (
	CW  = 1
	CCW = -1
)

// Tile is the falling tile. Blocks[0] is the pivot; the rest follow the
// catalog shape for (Kind, Rotation).
type Tile struct {
	Kind     Kind
	Rotation int
	Pivot    Point
	Blocks   [4]Point
	Color    Cell
}

// NewTile builds a tile with its blocks derived from the catalog.
func NewTile(kind Kind, rotation int, pivot Point, color Cell) Tile {
	return Tile{
		Kind:     kind,
		Rotation: rotation,
		Pivot:    pivot,
		Blocks:   blocksAt(kind, rotation, pivot),
		Color:    color,
	}
}

func blocksAt(kind Kind, rotation int, pivot Point) [4]Point {
	shape := Lookup(kind, rotation)
	blocks := [4]Point{pivot}
	for i, off := range shape {
		blocks[i+1] = Point{X: pivot.X + off.DX, Y: pivot.Y + off.DY}
	}
	return blocks
}

func shifted(blocks [4]Point, dx, dy int) [4]Point {
	for i := range blocks {
		blocks[i].X += dx
		blocks[i].Y += dy
	}
	return blocks
}

// Rotate turns the tile one step in dir (CW or CCW) around its pivot.
// A colliding rotation is discarded; there is no wall kick.
func (g *Game) Rotate(dir int) bool {
	next := (g.tile.Rotation + dir%4 + 4) % 4
	cand := blocksAt(g.tile.Kind, next, g.tile.Pivot)
	if g.grid.Collides(cand) {
		return false
	}
	g.tile.Rotation = next
	g.tile.Blocks = cand
	return true
}

// Translate moves the tile dx columns. A colliding move is discarded.
func (g *Game) Translate(dx int) bool {
	cand := shifted(g.tile.Blocks, dx, 0)
	if g.grid.Collides(cand) {
		return false
	}
	g.tile.Blocks = cand
	g.tile.Pivot.X += dx
	return true
}

// FallOne moves the tile one row down and reports whether it moved.
func (g *Game) FallOne() bool {
	cand := shifted(g.tile.Blocks, 0, 1)
	if g.grid.Collides(cand) {
		return false
	}
	g.tile.Blocks = cand
	g.tile.Pivot.Y++
	return true
}

// Apply writes the tile color into every visible block cell. It returns false
// if any block is still above the grid.
func (g *Game) Apply() bool {
	ok := true
	for _, b := range g.tile.Blocks {
		if b.Y < 0 {
			ok = false
			continue
		}
		g.grid[b.X][b.Y] = g.tile.Color
	}
	return ok
}

// Unapply erases the tile's visible block cells so transforms do not
// collide with the tile itself.
func (g *Game) Unapply() {
	for _, b := range g.tile.Blocks {
		if b.Y >= 0 {
			g.grid[b.X][b.Y] = Empty
		}
	}
}

// Spawn replaces the active tile with a random one one row above the grid.
func (g *Game) Spawn() {
	kind := Kind(g.rng.Intn(KindCount))
	rotation := g.rng.Intn(4)
	color := Cell(g.rng.Intn(ColorCount) + 1)
	g.tile = NewTile(kind, rotation, Point{X: Width / 2, Y: -1}, color)
	g.stats.Spawned++
}
