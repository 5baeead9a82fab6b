package huffman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// ErrMalformed is returned by Decode when the bit stream ends in the
// middle of a code, or contains a bit no code can begin with.
var ErrMalformed = errors.New("huffman: malformed bit stream")

// Decode walks the tree over the bits of the stream and reconstructs the
// original symbol sequence: bit 0 descends to the left child, bit 1 to the
// right, and reaching a leaf emits its symbol and resets the walk to the
// root.  The stream must end exactly on a code boundary.
//
// For a lone-leaf tree the code is the single bit 0, mirroring
// NewCodeTable; a 1 bit in such a stream is malformed.
func Decode(bits Bitstring, root *Node) (string, error) {
	assert.Assertf(root != nil, "nil tree root")

	var sb strings.Builder
	if root.IsLeaf() {
		for i := 0; i < bits.Len(); i++ {
			if bits.Bit(i) {
				return "", fmt.Errorf("bit %d selects a missing branch: %w", i, ErrMalformed)
			}
			sb.WriteRune(rune(root.Symbol))
		}
		return sb.String(), nil
	}

	node := root
	for i := 0; i < bits.Len(); i++ {
		if bits.Bit(i) {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.IsLeaf() {
			sb.WriteRune(rune(node.Symbol))
			node = root
		}
	}
	if node != root {
		return "", fmt.Errorf("stream ends inside a code: %w", ErrMalformed)
	}
	return sb.String(), nil
}
