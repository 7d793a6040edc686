package linden

// --- Subtree bounds ---

// Bounds returns the axis-aligned bounding box of this node's subtree in the
// node's own local coordinate space. Path bounds are stroke-inclusive: an
// outlined shape grows by half its stroke width on every side, so the box
// covers every pixel the subtree can touch. Returns ok=false when the subtree
// holds no geometry at all.
func (n *Node) Bounds() (Rect, bool) {
	var acc Rect
	has := false
	boundsWalk(n, Identity(), true, &acc, &has)
	return acc, has
}

// TightBounds is Bounds without the stroke growth: the box of the geometry's
// fill area only.
func (n *Node) TightBounds() (Rect, bool) {
	var acc Rect
	has := false
	boundsWalk(n, Identity(), false, &acc, &has)
	return acc, has
}

// boundsWalk accumulates geometry bounds for node and its descendants.
// m maps node's local space into the space bounds are reported in.
func boundsWalk(node *Node, m Matrix, stroke bool, acc *Rect, has *bool) {
	if r, ok := nodeBounds(node, stroke); ok {
		r = mapRect(m, r)
		if *has {
			*acc = rectUnion(*acc, r)
		} else {
			*acc = r
			*has = true
		}
	}
	for _, child := range node.children {
		boundsWalk(child, m.Mul(child.localMatrix()), stroke, acc, has)
	}
}

// ownBounds returns the node's own stroke-inclusive geometry bounds,
// ignoring children.
func ownBounds(n *Node) (Rect, bool) {
	return nodeBounds(n, true)
}

// nodeBounds returns the node's own geometry bounds, ignoring children.
// When stroke is true the box grows by half the stroke width per side.
func nodeBounds(n *Node, stroke bool) (Rect, bool) {
	if n.Path == nil || n.Path.Empty() {
		return Rect{}, false
	}
	r := n.Path.Bounds()
	if stroke && n.Type == NodeTypePath && n.StrokeWidth > 0 && n.StrokeColor.A > 0 {
		half := n.StrokeWidth / 2
		r.X -= half
		r.Y -= half
		r.Width += n.StrokeWidth
		r.Height += n.StrokeWidth
	}
	return r, true
}

// mapRect transforms all four corners of r by m and returns their axis-aligned
// bounding box. Under rotation the result is larger than the rotated rect.
func mapRect(m Matrix, r Rect) Rect {
	x0, y0 := m.Apply(r.X, r.Y)
	x1, y1 := m.Apply(r.X+r.Width, r.Y)
	x2, y2 := m.Apply(r.X, r.Y+r.Height)
	x3, y3 := m.Apply(r.X+r.Width, r.Y+r.Height)

	minX := min4(x0, x1, x2, x3)
	maxX := max4(x0, x1, x2, x3)
	minY := min4(y0, y1, y2, y3)
	maxY := max4(y0, y1, y2, y3)

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// rectUnion returns the smallest rectangle containing both a and b.
func rectUnion(a, b Rect) Rect {
	minX := a.X
	if b.X < minX {
		minX = b.X
	}
	minY := a.Y
	if b.Y < minY {
		minY = b.Y
	}
	maxX := a.X + a.Width
	if bx := b.X + b.Width; bx > maxX {
		maxX = bx
	}
	maxY := a.Y + a.Height
	if by := b.Y + b.Height; by > maxY {
		maxY = by
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func min4(a, b, c, d float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if d < m {
		m = d
	}
	return m
}

func max4(a, b, c, d float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	if d > m {
		m = d
	}
	return m
}
