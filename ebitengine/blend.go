package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/linden"
)

// compositeBlend maps a linden composite operator to the matching Ebitengine
// blend. Every Porter-Duff operator has a predefined counterpart.
func compositeBlend(op linden.CompositeOp) ebiten.Blend {
	switch op {
	case linden.CompositeSourceOver:
		return ebiten.BlendSourceOver
	case linden.CompositeSourceIn:
		return ebiten.BlendSourceIn
	case linden.CompositeSourceOut:
		return ebiten.BlendSourceOut
	case linden.CompositeSourceAtop:
		return ebiten.BlendSourceAtop
	case linden.CompositeDestinationOver:
		return ebiten.BlendDestinationOver
	case linden.CompositeDestinationIn:
		return ebiten.BlendDestinationIn
	case linden.CompositeDestinationOut:
		return ebiten.BlendDestinationOut
	case linden.CompositeDestinationAtop:
		return ebiten.BlendDestinationAtop
	case linden.CompositeLighter:
		return ebiten.BlendLighter
	case linden.CompositeCopy:
		return ebiten.BlendCopy
	case linden.CompositeXor:
		return ebiten.BlendXor
	default:
		return ebiten.BlendSourceOver
	}
}
