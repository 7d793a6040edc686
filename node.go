package linden

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic — linden is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used
// for all node types to avoid interface dispatch on the draw path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// childGen counts structural changes to the child list: adds, removes,
	// reorders, and clip-flag toggles on direct children. Derived caches
	// compare against it instead of subscribing to change notifications.
	childGen uint64

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Visibility
	Alpha   float64
	Visible bool

	// Clip flags: owned by this node, inspected by the parent group.
	clipMask  bool
	clippable bool

	// Group fields (NodeTypeGroup)
	CompositeOp CompositeOp // operator active while painting clip-mask children
	clipItems   []*Node     // cached direct children currently flagged clip mask
	clipGen     uint64      // childGen the cache was built at; stale when different
	deferredBuf []*Node     // reused buffer for deferred non-clippable children

	// Path fields (NodeTypePath; also the frame geometry for NodeTypeTextFrame)
	Path        *PathData
	FillColor   Color
	StrokeColor Color
	StrokeWidth float64

	// Text fields (NodeTypeTextFrame)
	Text *TextContent

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Visible = true
	n.clippable = true
	n.childGen = 1
}

// NewGroup creates a container node that composites its children. The
// compositing operator defaults to source-in ("source restricted to mask")
// and is applied only while painting children flagged as clip masks.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup, CompositeOp: CompositeSourceIn}
	nodeDefaults(n)
	return n
}

// NewPath creates a node that fills and/or strokes retained path geometry.
// The fill defaults to opaque black; set StrokeColor and StrokeWidth to add
// an outline, or clear FillColor's alpha to draw an outline only.
func NewPath(name string, path *PathData) *Node {
	n := &Node{Name: name, Type: NodeTypePath, Path: path, FillColor: ColorBlack}
	nodeDefaults(n)
	return n
}

// NewTextFrame creates a node that wraps and paints text inside the bounding
// box of the given path. The path supplies geometry only; it is not painted.
// A nil or zero-value config yields an empty payload with default styling.
func NewTextFrame(name string, path *PathData, cfg TextConfig) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeTextFrame,
		Path: path,
		Text: newTextContent(cfg),
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("linden: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("linden: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childGen++
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("linden: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("linden: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("linden: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childGen++
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("linden: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("linden: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.childGen++
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.childGen++
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings. Reordering is
// a structural change: clip masks paint in list order, so the parent's cache
// is invalidated.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("linden: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("linden: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.childGen++
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
}

// SetPivot sets the node's PivotX and PivotY.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
}

// --- Cloning ---

// Clone returns a deep copy of this node and its subtree. Path geometry and
// text payloads are copied, never shared; the copy has a fresh ID and no
// parent. Derived caches are not copied and rebuild on first use.
func (n *Node) Clone() *Node {
	c := &Node{
		Name:        n.Name,
		Type:        n.Type,
		X:           n.X,
		Y:           n.Y,
		ScaleX:      n.ScaleX,
		ScaleY:      n.ScaleY,
		Rotation:    n.Rotation,
		PivotX:      n.PivotX,
		PivotY:      n.PivotY,
		Alpha:       n.Alpha,
		Visible:     n.Visible,
		clipMask:    n.clipMask,
		clippable:   n.clippable,
		CompositeOp: n.CompositeOp,
		FillColor:   n.FillColor,
		StrokeColor: n.StrokeColor,
		StrokeWidth: n.StrokeWidth,
		childGen:    1,
	}
	c.ID = nextNodeID()
	if n.Path != nil {
		c.Path = n.Path.Clone()
	}
	if n.Text != nil {
		c.Text = n.Text.clone()
	}
	for _, child := range n.children {
		cc := child.Clone()
		cc.Parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.clipItems = nil
	n.deferredBuf = nil
	n.Path = nil
	n.Text = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			n.childGen++
			return
		}
	}
}
