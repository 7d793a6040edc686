package linden

import "math"

// --- Draw pass ---

// Draw paints this node and its subtree onto surf. Surface state touched
// while drawing the node (transform, font, composite operator) is scoped by a
// Save/Restore pair, so siblings never observe each other's mutations.
//
// Invisible nodes and nodes with zero alpha are skipped along with their
// entire subtree.
func (n *Node) Draw(surf Surface, rp *RenderParams) {
	if n.disposed || !n.Visible || n.Alpha <= 0 {
		return
	}
	if rp.cull && shouldCull(n, rp.cullBounds) {
		if rp.stats != nil {
			rp.stats.culled++
		}
		return
	}
	if rp.stats != nil {
		rp.stats.nodes++
	}

	prevAlpha := rp.alpha
	rp.alpha *= n.Alpha

	surf.Save()
	surf.Concat(n.localMatrix())

	switch n.Type {
	case NodeTypeGroup:
		n.drawGroup(surf, rp)
	case NodeTypePath:
		n.drawPath(surf, rp)
	case NodeTypeTextFrame:
		n.drawTextFrame(surf, rp)
	}

	surf.Restore()
	rp.alpha = prevAlpha
}

// drawGroup paints a group's children in child-list order.
//
// When the group holds clip-mask children, three rules apply on top of plain
// in-order drawing:
//
//  1. A clip-mask child is painted under the group's compositing operator.
//     The swap is scoped: the operator is saved before the mask paints and
//     restored right after, so it never outlives the mask.
//  2. A non-clippable child is deferred and painted after the ordinary pass,
//     preserving relative order among deferred children. Mask operators
//     rewrite every pixel beneath them, so content meant to escape the mask
//     must land after clipping has resolved.
//  3. The group's stroke-inclusive bounds are resolved first. A degenerate
//     box (zero width or height, or no geometry at all) aborts the whole
//     group silently: there is nothing for a mask to clip against.
func (n *Node) drawGroup(surf Surface, rp *RenderParams) {
	hasClip := n.IsClipped()
	if hasClip {
		box, ok := n.Bounds()
		if !ok || box.Width == 0 || box.Height == 0 {
			return
		}
		rp.LayerOffset = Vec2{X: math.Floor(box.X), Y: math.Floor(box.Y)}
	}

	deferred := n.deferredBuf[:0]
	for _, child := range n.children {
		switch {
		case child.clipMask:
			surf.Save()
			surf.SetCompositeOp(n.CompositeOp)
			child.Draw(surf, rp)
			surf.Restore()
		case hasClip && !child.clippable:
			deferred = append(deferred, child)
			if rp.stats != nil {
				rp.stats.deferred++
			}
		default:
			child.Draw(surf, rp)
		}
	}
	for _, child := range deferred {
		child.Draw(surf, rp)
	}
	// Keep the buffer for the next pass, but drop the references so nodes
	// disposed between passes are not retained here.
	for i := range deferred {
		deferred[i] = nil
	}
	n.deferredBuf = deferred[:0]
}

// drawPath fills and strokes the node's retained path. A missing or empty
// path, and a fully transparent style, are silent no-ops.
func (n *Node) drawPath(surf Surface, rp *RenderParams) {
	if n.Path == nil || n.Path.Empty() {
		return
	}
	painted := false
	if n.FillColor.A > 0 {
		surf.FillPath(n.Path, scaleAlpha(n.FillColor, rp.alpha))
		painted = true
	}
	if n.StrokeColor.A > 0 && n.StrokeWidth > 0 {
		surf.StrokePath(n.Path, scaleAlpha(n.StrokeColor, rp.alpha), n.StrokeWidth)
		painted = true
	}
	if painted && rp.stats != nil {
		rp.stats.paths++
	}
}
