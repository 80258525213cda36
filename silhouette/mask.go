package silhouette

// Mask records which pixels a counting run has already claimed. Each cell
// holds the 1-based label of the region that claimed it, or 0. Cells are
// only ever written once, so a claimed pixel stays claimed for the rest of
// the run.
type Mask struct {
	width, height int

	cells   []int32
	regions int32
}

// NewMask returns an all-unvisited mask of width × height cells.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		cells:  make([]int32, width*height),
	}
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// InBounds reports whether (x,y) lies inside the mask.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Visited reports whether (x,y) has been claimed. (x,y) must be in bounds.
func (m *Mask) Visited(x, y int) bool {
	return m.cells[m.index(x, y)] != 0
}

// Label returns the region label of (x,y), 0 when unvisited.
func (m *Mask) Label(x, y int) int32 {
	return m.cells[m.index(x, y)]
}

// Regions returns the number of non-empty regions flooded so far.
func (m *Mask) Regions() int {
	return int(m.regions)
}

// Claimed returns the number of claimed cells.
func (m *Mask) Claimed() int {
	n := 0
	for _, l := range m.cells {
		if l != 0 {
			n++
		}
	}
	return n
}

func (m *Mask) mark(x, y int, label int32) {
	m.cells[m.index(x, y)] = label
}

// index maps (x,y) to a row-major index.
func (m *Mask) index(x, y int) int {
	return y*m.width + x
}
