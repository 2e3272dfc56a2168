// This file contains the Node type, which models one entry of the replay's
// tagged-node metadata tree.

package rep

import (
	"fmt"
	"io"
	"strings"
)

// NodeHeaderWidth is the number of bytes a node's fixed header occupies:
// 2 bytes of token, 2 bytes of size, and 2 trailing padding bytes.
const NodeHeaderWidth = 6

// Node is one entry of the tagged-node metadata tree discovered by the
// node-tree builder. Nodes are immutable once built: Parent is a
// non-owning back-reference used only to compute Path, and Children is
// built once in byte order during tree discovery.
type Node struct {
	// Token is the node's 2 character ASCII tag (uppercase letters and digits only).
	Token string

	// Offset is the start of the node (pointing at the token bytes) within
	// the decompressed replay buffer.
	Offset int

	// Size is the node's payload length, as read from the 2 bytes following
	// the token.
	Size uint16

	// Parent is the enclosing node, or nil for the root.
	Parent *Node

	// Children are this node's direct children, in the order they appear
	// in the buffer.
	Children []*Node
}

// EndOffset returns the offset one past this node's payload, i.e.
// Offset + Size + NodeHeaderWidth.
func (n *Node) EndOffset() int {
	return n.Offset + int(n.Size) + NodeHeaderWidth
}

// Path returns the slash-joined tokens from the root to this node, e.g.
// "RT/MP/ST".
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Token
	}
	return n.Parent.Path() + "/" + n.Token
}

// GetChildren returns every descendant reachable by matching each element
// of path to a direct child in sequence, one level at a time. Multiple
// matches at any level fan out, so the result may contain more than one
// node (or none). An empty path returns just this node.
func (n *Node) GetChildren(path []string) []*Node {
	if len(path) == 0 {
		return []*Node{n}
	}

	var found []*Node
	for _, child := range n.Children {
		if child.Token == path[0] {
			found = append(found, child.GetChildren(path[1:])...)
		}
	}
	return found
}

// String returns a short debug summary of the node, analogous to the
// original parser's Node.__str__.
func (n *Node) String() string {
	return fmt.Sprintf(
		"%s -- offset=%d, end_offset=%d, size=%d, children=%d",
		n.Path(), n.Offset, n.EndOffset(), n.Size, len(n.Children),
	)
}

// Print writes the node and its full subtree to w, one line per node,
// indented by depth. It is a debugging aid, the Go analogue of the
// original parser's recursive Node.print().
func (n *Node) Print(w io.Writer) {
	n.print(w, 0)
}

func (n *Node) print(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n)
	for _, child := range n.Children {
		child.print(w, depth+1)
	}
}
