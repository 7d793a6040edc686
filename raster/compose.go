package raster

import (
	"image"
	"image/draw"

	"github.com/phanxgames/linden"
)

// composeRGBA blends src onto dst in place using the Porter-Duff operator
// op. Both images must have identical bounds. Pixels are premultiplied, so
// every channel, alpha included, blends as src*Fa + dst*Fb with the factors
// determined by op and the two alphas.
//
// Source-over takes the stdlib draw.Over path; the general loop covers the
// operators that rewrite destination pixels even where the source is empty.
func composeRGBA(dst, src *image.RGBA, op linden.CompositeOp) {
	if op == linden.CompositeSourceOver {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
		return
	}
	dp := dst.Pix
	sp := src.Pix
	n := len(dp)
	if len(sp) < n {
		n = len(sp)
	}
	for i := 0; i+3 < n; i += 4 {
		sa := uint32(sp[i+3])
		da := uint32(dp[i+3])
		fa, fb := composeFactors(op, sa, da)
		for c := 0; c < 4; c++ {
			v := (uint32(sp[i+c])*fa + uint32(dp[i+c])*fb) / 255
			if v > 255 {
				v = 255
			}
			dp[i+c] = uint8(v)
		}
	}
}

// composeFactors returns the source and destination weights in [0, 255] for
// op, given the source and destination alphas in [0, 255].
func composeFactors(op linden.CompositeOp, sa, da uint32) (fa, fb uint32) {
	switch op {
	case linden.CompositeSourceOver:
		return 255, 255 - sa
	case linden.CompositeSourceIn:
		return da, 0
	case linden.CompositeSourceOut:
		return 255 - da, 0
	case linden.CompositeSourceAtop:
		return da, 255 - sa
	case linden.CompositeDestinationOver:
		return 255 - da, 255
	case linden.CompositeDestinationIn:
		return 0, sa
	case linden.CompositeDestinationOut:
		return 0, 255 - sa
	case linden.CompositeDestinationAtop:
		return 255 - da, sa
	case linden.CompositeLighter:
		return 255, 255
	case linden.CompositeCopy:
		return 255, 0
	case linden.CompositeXor:
		return 255 - da, 255 - sa
	}
	return 255, 255 - sa
}
