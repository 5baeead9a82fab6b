package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// ErrEmptyInput is returned by BuildTree when there are no symbols to code.
var ErrEmptyInput = errors.New("huffman: empty input")

// Node is a node in a Huffman tree.  A Node without children is a leaf and
// carries the Symbol it codes; an internal Node always has exactly two
// children and carries InvalidSymbol.  Every Node's Weight is the sum of
// the leaf weights in its subtree.
//
// Nodes are never mutated after BuildTree returns, so a single tree may be
// shared by any number of concurrent Decode calls.
type Node struct {
	Left   *Node
	Right  *Node
	Weight int
	Symbol Symbol

	// order is the node's rank in the deterministic merge ordering:
	// leaves take their rank from code point order, merged nodes take
	// consecutive ranks after the leaves.
	order int
}

// IsLeaf reports whether n codes a single symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// String returns a short description of this node.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("leaf{%s, weight=%d}", strconv.QuoteRune(rune(n.Symbol)), n.Weight)
	}
	return fmt.Sprintf("internal{weight=%d}", n.Weight)
}

var _ fmt.Stringer = (*Node)(nil)

// BuildTree builds the Huffman tree for the given frequency map.
//
// Construction is deterministic: leaves enter the working set in code point
// order, the heap breaks weight ties by that order, and each merge takes
// the node popped first as the left child and the node popped second as the
// right child.  A map with a single symbol yields a tree that is one lone
// leaf; see NewCodeTable and Decode for how that shape is coded.
func BuildTree(freqs FreqMap) (*Node, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("cannot build a Huffman tree: %w", ErrEmptyInput)
	}

	leaves := make([]*Node, 0, len(freqs))
	for symbol, count := range freqs {
		assert.Assertf(count > 0, "non-positive count %d for symbol %d", count, int32(symbol))
		leaves = append(leaves, &Node{Weight: count, Symbol: symbol})
	}
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].Symbol < leaves[j].Symbol
	})
	for i, leaf := range leaves {
		leaf.order = i
	}

	h := nodeHeap{leaves}
	h.Init()
	nextOrder := len(leaves)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Left:   left,
			Right:  right,
			Weight: left.Weight + right.Weight,
			Symbol: InvalidSymbol,
			order:  nextOrder,
		})
		nextOrder++
	}
	return heap.Pop(&h).(*Node), nil
}

// BuildTreeFromString counts the symbols of the input text and builds
// their Huffman tree.
func BuildTreeFromString(input string) (*Node, error) {
	return BuildTree(CountSymbols(input))
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
