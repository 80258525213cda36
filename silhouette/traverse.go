package silhouette

import (
	"fmt"

	"silcount/pixel"
)

// Strategy selects how a region is flooded from its seed.
type Strategy int

const (
	// BreadthFirst drains a FIFO work list.
	BreadthFirst Strategy = iota
	// DepthFirst recurses into each neighbor. Past maxDepth nested calls
	// the rest of the region is drained from an explicit stack.
	DepthFirst
	// StackDepthFirst drains a LIFO work list.
	StackDepthFirst
)

var strategyNames = map[Strategy]string{
	BreadthFirst:    "bfs",
	DepthFirst:      "dfs",
	StackDepthFirst: "stack",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy maps "bfs", "dfs" or "stack" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// maxDepth bounds the recursion of DepthFirst.
const maxDepth = 1 << 16

// neighbors is the fixed 4-connected visiting order: left, right, down, up.
var neighbors = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// Traverse floods the 4-connected foreground region containing (x,y),
// claims its pixels in mask under a fresh label and returns the region size.
// It returns 0 and claims nothing when (x,y) is outside the grid, already
// visited, or background, so it may be called on any coordinate.
// mask must have the dimensions of grid.
func (s Strategy) Traverse(grid pixel.Grid, mask *Mask, cl Classifier, x, y int) int {
	w := walker{grid: grid, mask: mask, class: cl, label: mask.regions + 1}

	var size int
	switch s {
	case DepthFirst:
		size = w.depthFirst(x, y, 0)
	case StackDepthFirst:
		size = w.drain(&stack{}, x, y)
	default:
		size = w.drain(&queue{}, x, y)
	}

	if size > 0 {
		mask.regions = w.label
	}
	return size
}

type point struct{ x, y int }

// frontier is a work list of pending coordinates.
type frontier interface {
	push(p point)
	pop() (point, bool)
}

// queue is a FIFO frontier.
type queue struct {
	items []point
	head  int
}

func (q *queue) push(p point) { q.items = append(q.items, p) }

func (q *queue) pop() (point, bool) {
	if q.head == len(q.items) {
		return point{}, false
	}
	p := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return p, true
}

// stack is a LIFO frontier.
type stack struct {
	items []point
}

func (s *stack) push(p point) { s.items = append(s.items, p) }

func (s *stack) pop() (point, bool) {
	n := len(s.items)
	if n == 0 {
		return point{}, false
	}
	p := s.items[n-1]
	s.items = s.items[:n-1]
	return p, true
}

type walker struct {
	grid  pixel.Grid
	mask  *Mask
	class Classifier
	label int32
}

// claim marks (x,y) when it is in bounds, unvisited and foreground.
func (w *walker) claim(x, y int) bool {
	if !w.mask.InBounds(x, y) || w.mask.Visited(x, y) || !w.class.IsForeground(w.grid.Pixel(x, y)) {
		return false
	}
	w.mask.mark(x, y, w.label)
	return true
}

// drain seeds f with (x,y) and pops until empty. Neighbors are pushed
// unchecked; claim filters them when they are popped.
func (w *walker) drain(f frontier, x, y int) int {
	size := 0
	f.push(point{x, y})
	for {
		p, ok := f.pop()
		if !ok {
			return size
		}
		if !w.claim(p.x, p.y) {
			continue
		}
		size++
		for _, d := range neighbors {
			f.push(point{p.x + d[0], p.y + d[1]})
		}
	}
}

func (w *walker) depthFirst(x, y, depth int) int {
	if depth >= maxDepth {
		return w.drain(&stack{}, x, y)
	}
	if !w.claim(x, y) {
		return 0
	}
	size := 1
	for _, d := range neighbors {
		size += w.depthFirst(x+d[0], y+d[1], depth+1)
	}
	return size
}
