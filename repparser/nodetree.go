// This file implements the node-tree builder: discovery of the nested
// tagged-node hierarchy by bounded heuristic scanning for the next
// two-byte uppercase/digit token, starting from the fixed root offset.

package repparser

import (
	"log"

	"github.com/aoe2rec/aoe2rec/rep"
)

const (
	// rootOffset is the fixed offset of the outer hierarchy's root node
	// within the decompressed replay buffer.
	rootOffset = 257

	// maxScanLength is the bounded-heuristic-scan cap: if no valid token is
	// found within this many bytes of a scan's starting position, the scan
	// reports "no more children" rather than wandering into unrelated
	// payload.
	maxScanLength = 50
)

// isTokenByte reports whether b belongs to the token alphabet {A-Z, 0-9}.
func isTokenByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// findTwoLetterSeq searches data starting at offset for the first position
// whose byte and following byte are both in the token alphabet. If
// upperBound is non-nil, the scan must not reach or exceed *upperBound.
// Independently, the scan never advances more than maxScanLength bytes past
// offset. ok is false if no match is found under either bound, or if fewer
// than 2 bytes remain in data from offset.
func findTwoLetterSeq(data []byte, offset int, upperBound *int) (pos int, ok bool) {
	pos = offset
	for {
		if upperBound != nil && pos >= *upperBound {
			return 0, false
		}
		if pos+1 >= len(data) {
			return 0, false
		}
		if isTokenByte(data[pos]) && isTokenByte(data[pos+1]) {
			return pos, true
		}
		pos++
		if pos > offset+maxScanLength {
			return 0, false
		}
	}
}

// buildNodeTree discovers the full tagged-node hierarchy rooted at
// rootOffset in data.
func buildNodeTree(data []byte, logger *log.Logger) *rep.Node {
	token := string(data[rootOffset : rootOffset+2])
	size, _ := readU16(data, rootOffset+2)

	root := &rep.Node{
		Token:  token,
		Offset: rootOffset,
		Size:   size,
	}
	discoverChildren(root, data, logger)
	return root
}

// discoverChildren populates parent.Children in byte order, then recurses
// into each child. Recursion terminates naturally because every child's
// window is strictly smaller than its parent's.
func discoverChildren(parent *rep.Node, data []byte, logger *log.Logger) {
	pos := parent.Offset + 2
	end := parent.EndOffset()

	for pos < end {
		hit, ok := findTwoLetterSeq(data, pos, &end)
		if !ok {
			break
		}

		token := string(data[hit : hit+2])
		size, _ := readU16(data, hit+2)

		child := &rep.Node{
			Token:  token,
			Offset: hit,
			Size:   size,
			Parent: parent,
		}

		if child.EndOffset() > parent.EndOffset() {
			logger.Printf("warning: node %s end_offset %d exceeds parent %s end_offset %d",
				child.Path(), child.EndOffset(), parent.Path(), parent.EndOffset())
		}

		parent.Children = append(parent.Children, child)
		pos = child.EndOffset()
	}

	for _, child := range parent.Children {
		discoverChildren(child, data, logger)
	}
}
