package linden

import "time"

// Scene is the top-level object that owns a node tree and runs draw passes
// over it.
type Scene struct {
	root   *Node
	camera *Camera
	debug  bool
}

// NewScene creates a new scene with a pre-created root group.
func NewScene() *Scene {
	return &Scene{root: NewGroup("root")}
}

// Root returns the scene's root group node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetCamera attaches a camera to the scene. Draw passes then map world
// coordinates through the camera's view matrix, and leaf nodes outside the
// visible area are culled when the camera enables it. A nil camera restores
// the default identity view.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// Camera returns the attached camera, or nil when none is set.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Update advances time-based scene state by dt seconds: camera following,
// scroll animations, and bounds clamping. Scenes without a camera have no
// time-based state and Update is a no-op.
func (s *Scene) Update(dt float64) {
	if s.camera != nil {
		s.camera.update(float32(dt))
	}
}

// Draw paints the scene tree onto surf in a single depth-first pass.
func (s *Scene) Draw(surf Surface) {
	rp := NewRenderParams()

	var stats drawStats
	var t0 time.Time
	if s.debug {
		rp.stats = &stats
		t0 = time.Now()
	}

	if s.camera != nil {
		if s.camera.CullEnabled {
			rp.cull = true
			rp.cullBounds = s.camera.VisibleBounds()
		}
		surf.Save()
		surf.Concat(s.camera.ViewMatrix())
		s.root.Draw(surf, rp)
		surf.Restore()
	} else {
		s.root.Draw(surf, rp)
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// Dispose disposes the scene's entire node tree.
func (s *Scene) Dispose() {
	s.root.Dispose()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-pass draw stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
