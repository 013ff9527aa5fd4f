package pebble

import "fmt"

// NotAChildError is returned when removing a node from a container that is
// not its parent.
type NotAChildError struct {
	Child  *Node
	Parent *Node
}

func (e *NotAChildError) Error() string {
	return fmt.Sprintf("pebble: %s is not a child of %s", nodeLabel(e.Child), nodeLabel(e.Parent))
}

// NotChildrenError is returned by SwapChildren when at least one of the two
// nodes is not a child of the caller.
type NotChildrenError struct {
	A, B   *Node
	Parent *Node
}

func (e *NotChildrenError) Error() string {
	return fmt.Sprintf("pebble: both %s and %s must be children of %s",
		nodeLabel(e.A), nodeLabel(e.B), nodeLabel(e.Parent))
}

func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.Name != "" {
		return fmt.Sprintf("%s %q (ID %d)", n.Type, n.Name, n.ID)
	}
	return fmt.Sprintf("%s (ID %d)", n.Type, n.ID)
}
