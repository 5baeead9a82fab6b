package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each coded Symbol to its bit-string code.  Codes are the
// root-to-leaf paths of the tree the table was derived from, so no code is
// ever a prefix of another.
type CodeTable map[Symbol]Bitstring

// NewCodeTable derives the code table for the given tree.  Descending to a
// left child appends a 0 bit, descending to a right child appends a 1 bit,
// matching the bit convention Decode walks with.
//
// A tree consisting of one lone leaf yields the one-bit code "0" for its
// symbol, so no symbol ever receives an empty code.
func NewCodeTable(root *Node) CodeTable {
	assert.Assertf(root != nil, "nil tree root")

	if root.IsLeaf() {
		return CodeTable{root.Symbol: MakeBitstring("0")}
	}

	type walkItem struct {
		node *Node
		path Bitstring
	}

	// The stack never holds more than one item per level of the tree,
	// and a Huffman tree over a total leaf weight of W is no deeper than
	// about 1.44*log2(W).
	table := make(CodeTable)
	stack := make([]walkItem, 0, 2*log2int(root.Weight))
	stack = append(stack, walkItem{root, Bitstring{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := top.node
		if node.IsLeaf() {
			table[node.Symbol] = top.path
			continue
		}

		assert.Assertf(node.Left != nil && node.Right != nil, "internal node with a missing child")
		leftPath := top.path.Clone()
		leftPath.AppendBit(false)
		rightPath := top.path.Clone()
		rightPath.AppendBit(true)
		stack = append(stack, walkItem{node.Right, rightPath})
		stack = append(stack, walkItem{node.Left, leftPath})
	}
	return table
}

// Lookup returns the code for the given symbol, if the table has one.
func (t CodeTable) Lookup(symbol Symbol) (Bitstring, bool) {
	code, found := t[symbol]
	return code, found
}

// Dump writes a programmer-readable dump of the table to the given writer,
// one symbol per line in code point order.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	symbols := make(bySymbol, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\t%s = %s\n", strconv.QuoteRune(rune(symbol)), t[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
