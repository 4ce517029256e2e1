package game

// Kind identifies one of the seven tile shapes.
type Kind uint8

const (
	KindLong Kind = iota
	KindBlock
	KindStairsUp
	KindStairsDown
	KindLLeft
	KindLRight
	KindPedestal

	KindCount = 7
)

func (k Kind) String() string {
	switch k {
	case KindLong:
		return "long"
	case KindBlock:
		return "block"
	case KindStairsUp:
		return "stairs-up"
	case KindStairsDown:
		return "stairs-down"
	case KindLLeft:
		return "l-left"
	case KindLRight:
		return "l-right"
	case KindPedestal:
		return "pedestal"
	default:
		return "unknown"
	}
}

// Period is the number of rotation steps after which a kind's shapes repeat.
func (k Kind) Period() int {
	switch k {
	case KindLong, KindStairsUp, KindStairsDown:
		return 2
	default:
		return 4
	}
}

// Offset is a block position relative to the tile pivot.
type Offset struct {
	DX int
	DY int
}

// Shape holds the three non-pivot blocks of one (kind, rotation) pair.
type Shape [3]Offset

// ShapeID indexes the catalog.
type ShapeID uint8

const (
	shapeLongVert ShapeID = iota
	shapeLongHori
	shapeBlock
	shapeStairsUpHori
	shapeStairsUpVert
	shapeStairsDownHori
	shapeStairsDownVert
	shapeLLeft000
	shapeLLeft090
	shapeLLeft180
	shapeLLeft270
	shapeLRight000
	shapeLRight090
	shapeLRight180
	shapeLRight270
	shapePedestal000
	shapePedestal090
	shapePedestal180
	shapePedestal270

	shapeCount
)

var catalog = [shapeCount]Shape{
	shapeLongVert:       {{0, -2}, {0, -1}, {0, 1}},
	shapeLongHori:       {{-1, 0}, {1, 0}, {2, 0}},
	shapeBlock:          {{1, 0}, {0, 1}, {1, 1}},
	shapeStairsUpHori:   {{-1, 0}, {0, 1}, {1, 1}},
	shapeStairsUpVert:   {{0, -1}, {-1, 0}, {-1, 1}},
	shapeStairsDownHori: {{1, 0}, {0, 1}, {-1, 1}},
	shapeStairsDownVert: {{-1, -1}, {-1, 0}, {0, 1}},
	shapeLLeft000:       {{0, -1}, {0, 1}, {-1, 1}},
	shapeLLeft090:       {{-1, -1}, {-1, 0}, {1, 0}},
	shapeLLeft180:       {{0, -1}, {1, -1}, {0, 1}},
	shapeLLeft270:       {{-1, 0}, {1, 0}, {1, 1}},
	shapeLRight000:      {{0, -1}, {0, 1}, {1, 1}},
	shapeLRight090:      {{-1, 1}, {-1, 0}, {1, 0}},
	shapeLRight180:      {{0, -1}, {-1, -1}, {0, 1}},
	shapeLRight270:      {{-1, 0}, {1, 0}, {1, -1}},
	shapePedestal000:    {{-1, 0}, {0, -1}, {1, 0}},
	shapePedestal090:    {{0, -1}, {1, 0}, {0, 1}},
	shapePedestal180:    {{-1, 0}, {0, 1}, {1, 0}},
	shapePedestal270:    {{-1, 0}, {0, -1}, {0, 1}},
}

// rotations maps each kind to its shapes, one per rotation step within the period.
var rotations = [KindCount][4]ShapeID{
	KindLong:       {shapeLongVert, shapeLongHori},
	KindBlock:      {shapeBlock, shapeBlock, shapeBlock, shapeBlock},
	KindStairsUp:   {shapeStairsUpHori, shapeStairsUpVert},
	KindStairsDown: {shapeStairsDownHori, shapeStairsDownVert},
	KindLLeft:      {shapeLLeft000, shapeLLeft090, shapeLLeft180, shapeLLeft270},
	KindLRight:     {shapeLRight000, shapeLRight090, shapeLRight180, shapeLRight270},
	KindPedestal:   {shapePedestal000, shapePedestal090, shapePedestal180, shapePedestal270},
}

// ShapeFor resolves the catalog entry used by kind at the given rotation.
func ShapeFor(kind Kind, rotation int) ShapeID {
	kind %= KindCount
	period := kind.Period()
	r := rotation % period
	if r < 0 {
		r += period
	}
	return rotations[kind][r]
}

// Lookup returns the relative offsets of the three non-pivot blocks.
// It is total: any kind and rotation map to a catalog entry.
func Lookup(kind Kind, rotation int) Shape {
	return catalog[ShapeFor(kind, rotation)]
}
