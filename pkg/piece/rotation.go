package piece

// Coord is a signed (row, col) cell coordinate. Signed to allow transient
// out-of-bounds positions while a kick offset is being tried.
type Coord struct {
	Row, Col int8
}

// Cells is a piece's four occupied cells, either relative (within a 4x4
// frame) or absolute (on the board).
type Cells [4]Coord

// rotations holds the four rotation states of each shape, as offsets within
// a 4x4 frame. Row/col indices are an internal convention; only the deltas
// between rotation states matter, since Rotate only ever adds a diff.
var rotations = [NumShapes][4]Cells{
	I: {
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	J: {
		{{2, 0}, {2, 1}, {2, 2}, {3, 0}},
		{{1, 1}, {2, 1}, {3, 1}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {1, 2}},
		{{1, 0}, {1, 1}, {2, 1}, {3, 1}},
	},
	L: {
		{{2, 0}, {2, 1}, {2, 2}, {3, 2}},
		{{1, 1}, {1, 2}, {2, 1}, {3, 1}},
		{{1, 0}, {2, 0}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {3, 0}, {3, 1}},
	},
	O: {
		{{2, 1}, {2, 2}, {3, 1}, {3, 2}},
		{{2, 1}, {2, 2}, {3, 1}, {3, 2}},
		{{2, 1}, {2, 2}, {3, 1}, {3, 2}},
		{{2, 1}, {2, 2}, {3, 1}, {3, 2}},
	},
	S: {
		{{2, 0}, {2, 1}, {3, 1}, {3, 2}},
		{{1, 2}, {2, 1}, {2, 2}, {3, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 0}, {2, 1}, {3, 0}},
	},
	T: {
		{{2, 0}, {2, 1}, {2, 2}, {3, 1}},
		{{1, 1}, {2, 1}, {3, 1}, {2, 2}},
		{{2, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 0}, {2, 1}, {3, 1}},
	},
	Z: {
		{{2, 1}, {2, 2}, {3, 0}, {3, 1}},
		{{1, 1}, {2, 1}, {2, 2}, {3, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{1, 0}, {2, 0}, {2, 1}, {3, 1}},
	},
}

// Rotations returns the shape's four rotation states, as 4x4-frame offsets.
func (s Shape) Rotations() [4]Cells {
	return rotations[s]
}

// spawn holds each shape's absolute spawn coordinates, rotation state 0.
var spawn = [NumShapes]Cells{
	I: {{19, 3}, {19, 4}, {19, 5}, {19, 6}},
	O: {{19, 4}, {19, 5}, {20, 4}, {20, 5}},
	J: {{19, 3}, {19, 4}, {19, 5}, {20, 3}},
	L: {{19, 3}, {19, 4}, {19, 5}, {20, 5}},
	S: {{19, 3}, {19, 4}, {20, 4}, {20, 5}},
	Z: {{19, 4}, {19, 5}, {20, 3}, {20, 4}},
	T: {{19, 3}, {19, 4}, {19, 5}, {20, 4}},
}

// Offset is a (dcol, drow) kick offset tried in order during a rotation.
type Offset struct {
	DCol, DRow int8
}

// kicksOther holds the JLSTZ kick table, indexed by [direction][targetRotation][attempt].
var kicksOther = [2][4][5]Offset{
	Ccw: {
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 1-0
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 2-1
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 3-2
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 0-3
	},
	Cw: {
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 3-0
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 0-1
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 1-2
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 2-3
	},
}

// kicksI holds the I-piece kick table.
var kicksI = [2][4][5]Offset{
	Ccw: {
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},  // 1-0
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},  // 2-1
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},  // 3-2
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},  // 0-3
	},
	Cw: {
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},  // 3-0
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},  // 0-1
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},  // 1-2
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},  // 2-3
	},
}

// kicksO holds the O-piece kick table. The O piece never truly needs a kick
// (it has no wall-kick-relevant silhouette change) but the table is carried
// for uniformity with the other two families.
var kicksO = [2][4][5]Offset{
	Ccw: {
		{{-1, 1}, {-2, 1}, {-1, 2}, {0, 1}, {0, 0}},     // 1-0
		{{1, 1}, {2, 1}, {1, 2}, {0, 1}, {0, 0}},        // 2-1
		{{1, -1}, {2, -1}, {1, -2}, {0, -1}, {0, 0}},    // 3-2
		{{-1, -1}, {-2, -1}, {-1, -2}, {0, -1}, {0, 0}}, // 0-3
	},
	Cw: {
		{{1, 1}, {2, 1}, {1, 2}, {0, 1}, {0, 0}},        // 3-0
		{{1, -1}, {2, -1}, {1, -2}, {0, -1}, {0, 0}},    // 0-1
		{{-1, -1}, {-2, -1}, {-1, -2}, {0, -1}, {0, 0}}, // 1-2
		{{-1, 1}, {-2, 1}, {-1, 2}, {0, 1}, {0, 0}},     // 2-3
	},
}

// Kicks returns the ordered kick offsets to try for a rotation to
// targetRotation in the given direction.
func (s Shape) Kicks(dir Direction, targetRotation uint8) [5]Offset {
	switch s {
	case I:
		return kicksI[dir][targetRotation]
	case O:
		return kicksO[dir][targetRotation]
	default:
		return kicksOther[dir][targetRotation]
	}
}

// FallingPiece is a piece's shape, rotation state and absolute cell
// coordinates. Coordinates may transiently go out of bounds while a kick is
// being tried; callers must re-check Collides before committing.
type FallingPiece struct {
	Shape    Shape
	Rotation uint8
	Coords   Cells
}

// New returns the shape's fixed spawn pose: rotation 0 at its spawn cells.
func New(s Shape) FallingPiece {
	return FallingPiece{Shape: s, Coords: spawn[s]}
}

// Rotate returns the piece after rotating one step in dir, before any kick
// is applied (i.e. it may collide; the caller walks Kicks to fix that up).
func (p FallingPiece) Rotate(dir Direction) FallingPiece {
	next := p
	if dir == Cw {
		next.Rotation = (p.Rotation + 1) % 4
	} else {
		next.Rotation = (p.Rotation + 3) % 4
	}

	from := rotations[p.Shape][p.Rotation]
	to := rotations[p.Shape][next.Rotation]
	for i := range next.Coords {
		next.Coords[i].Row += to[i].Row - from[i].Row
		next.Coords[i].Col += to[i].Col - from[i].Col
	}
	return next
}

// Shift returns the piece translated by (drow, dcol).
func (p FallingPiece) Shift(drow, dcol int8) FallingPiece {
	next := p
	for i := range next.Coords {
		next.Coords[i].Row += drow
		next.Coords[i].Col += dcol
	}
	return next
}
