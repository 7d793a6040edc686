// Package linden is a retained-mode 2D vector graphics scene graph with
// pluggable immediate-mode backends.
//
// Linden provides the node tree, transform hierarchy, Porter-Duff group
// compositing with clip masks, retained path geometry, and box-constrained
// text layout that vector-drawing tools need, while leaving rasterization to
// a [Surface] implementation: a CPU rasterizer in linden/raster and an
// [Ebitengine] backend in linden/ebitengine.
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha.
//
// Create nodes with typed constructors: [NewGroup], [NewPath], and
// [NewTextFrame].
//
//	scene := linden.NewScene()
//
//	card := linden.NewGroup("card")
//	scene.Root().AddChild(card)
//
//	bg := linden.NewPath("bg", linden.RectPath(0, 0, 320, 180))
//	bg.FillColor = linden.Color{R: 0.3, G: 0.7, B: 1, A: 1}
//	card.AddChild(bg)
//
// Drawing a scene takes a backend surface:
//
//	surf := raster.New(640, 480)
//	scene.Draw(surf)
//	surf.WritePNG(w)
//
// # Clip masks
//
// Any child of a group can be flagged as a clip mask with
// [Node.SetClipMask]. Masking is simulated through compositing rather than
// geometric clipping: the mask's own shape paints under the group's
// compositing operator ([Node.CompositeOp], source-in unless set otherwise),
// combining with every pixel painted so far. Destination-in keeps prior
// content only where the mask covers, destination-out erases beneath the
// mask, and source-in stamps the mask's pixels onto prior coverage. Children
// marked non-clippable with [Node.SetClippable] escape these effects: they
// are deferred and painted after every mask in the group has resolved.
//
// # Text frames
//
// [NewTextFrame] ties a text payload to a path. The text wraps greedily
// against the path's bounding box, breaking words across lines and splitting
// words too wide for the box at character granularity. Lines that run past
// the bottom of the box are dropped.
//
//	frame := linden.NewTextFrame("label", linden.RectPath(0, 0, 200, 80),
//		linden.TextConfig{Content: "hello from a box", FontSize: 14})
//
// [Ebitengine]: https://ebitengine.org
package linden
