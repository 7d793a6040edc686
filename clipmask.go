package linden

// --- Clip flags ---

// SetClipMask flags or unflags this node as a clip mask. Clip masks are
// painted by the parent group under the group's compositing operator,
// combining with everything painted before them. Toggling the flag is a
// structural change from the parent's point of view.
func (n *Node) SetClipMask(mask bool) {
	if n.clipMask == mask {
		return
	}
	n.clipMask = mask
	if n.Parent != nil {
		n.Parent.childGen++
	}
}

// IsClipMask returns true if this node is flagged as a clip mask.
func (n *Node) IsClipMask() bool {
	return n.clipMask
}

// SetClippable controls whether this node participates in the parent group's
// clipping pass. Non-clippable children of a clipped group are deferred and
// painted after clipping resolves, so they escape the mask.
func (n *Node) SetClippable(clippable bool) {
	n.clippable = clippable
}

// IsClippable returns true if this node participates in parent clipping.
func (n *Node) IsClippable() bool {
	return n.clippable
}

// --- Clip cache ---

// clipMasks returns this group's direct children currently flagged as clip
// masks, in child-list order. The list is cached and rebuilt only when the
// child list has changed since the last build.
func (n *Node) clipMasks() []*Node {
	if n.clipGen != n.childGen {
		n.clipItems = n.clipItems[:0]
		for _, c := range n.children {
			if c.clipMask {
				n.clipItems = append(n.clipItems, c)
			}
		}
		n.clipGen = n.childGen
	}
	return n.clipItems
}

// IsClipped reports whether this group currently clips its content, i.e.
// whether at least one direct child is flagged as a clip mask.
func (n *Node) IsClipped() bool {
	return len(n.clipMasks()) > 0
}
