package linden

import (
	"fmt"
	"os"
	"time"
)

// drawStats holds per-pass timing and paint metrics.
// Only populated when Scene.debug is true.
type drawStats struct {
	drawTime  time.Duration
	nodes     int
	paths     int
	textLines int
	deferred  int
	culled    int
}

// debugLog prints timing and paint stats to stderr.
func (s *Scene) debugLog(stats drawStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[linden] draw: %v | nodes: %d | paths: %d | text lines: %d | deferred: %d | culled: %d\n",
		stats.drawTime, stats.nodes, stats.paths, stats.textLines, stats.deferred, stats.culled)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called when Scene.debug or the node's scene is
// in debug mode. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("linden debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[linden] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[linden] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
