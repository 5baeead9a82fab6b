package hufio

import (
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"

	huffman "github.com/PartyWumpus/huffman-testing"
)

// Reader decodes Huffman-coded bits from an underlying io.Reader by
// walking the tree bit by bit.
type Reader struct {
	br   *bitio.Reader
	root *huffman.Node
}

// NewReader returns a Reader that decodes against the given tree.  The
// tree must be the one the writing side's code table was derived from.
func NewReader(r io.Reader, root *huffman.Node) *Reader {
	return &Reader{br: bitio.NewReader(r), root: root}
}

// ReadString decodes exactly numSymbols symbols.  Running out of bits
// first, or hitting a bit no code starts with, is reported as
// huffman.ErrMalformed.
func (r *Reader) ReadString(numSymbols int) (string, error) {
	var sb strings.Builder

	if r.root.IsLeaf() {
		for decoded := 0; decoded < numSymbols; decoded++ {
			bit, err := r.br.ReadBool()
			if err != nil {
				return "", fmt.Errorf("hufio: stream ends after %d of %d symbols: %w", decoded, numSymbols, huffman.ErrMalformed)
			}
			if bit {
				return "", fmt.Errorf("hufio: bit selects a missing branch: %w", huffman.ErrMalformed)
			}
			sb.WriteRune(rune(r.root.Symbol))
		}
		return sb.String(), nil
	}

	for decoded := 0; decoded < numSymbols; decoded++ {
		node := r.root
		for !node.IsLeaf() {
			bit, err := r.br.ReadBool()
			if err != nil {
				return "", fmt.Errorf("hufio: stream ends after %d of %d symbols: %w", decoded, numSymbols, huffman.ErrMalformed)
			}
			if bit {
				node = node.Right
			} else {
				node = node.Left
			}
		}
		sb.WriteRune(rune(node.Symbol))
	}
	return sb.String(), nil
}
