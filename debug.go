package pebble

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug output goes. Tests swap it.
var debugOut io.Writer = os.Stderr

// debugLog prints per-frame traversal stats.
func (s *Scene) debugLog(stats renderStats, elapsed time.Duration) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[pebble] render: %v | painted: %d | culled: %d\n",
		elapsed, stats.painted, stats.culled)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[pebble] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[pebble] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
