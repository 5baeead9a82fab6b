// Package hufio streams Huffman-coded text over byte-oriented readers and
// writers, packing the bit stream with github.com/icza/bitio.  Closing a
// Writer pads the stream to a byte boundary with zero bits, so the reading
// side needs the symbol count to know where the payload ends and the
// padding begins.
package hufio

import (
	"fmt"
	"io"

	"github.com/icza/bitio"

	huffman "github.com/PartyWumpus/huffman-testing"
)

// Writer Huffman-codes text written to it and packs the bits into an
// underlying io.Writer.
type Writer struct {
	bw    *bitio.Writer
	table huffman.CodeTable
	count int
}

// NewWriter returns a Writer that codes symbols with the given table.  The
// caller must Close the Writer to flush the final partial byte.
func NewWriter(w io.Writer, table huffman.CodeTable) *Writer {
	return &Writer{bw: bitio.NewWriter(w), table: table}
}

// WriteString codes every symbol of s and returns the number of symbols
// written.  After an error the bit stream may end mid-symbol and is no
// longer usable.
func (w *Writer) WriteString(s string) (int, error) {
	var written int
	for _, r := range s {
		code, found := w.table.Lookup(huffman.Symbol(r))
		if !found {
			return written, fmt.Errorf("hufio: cannot encode %q: %w", r, huffman.ErrUnknownSymbol)
		}
		for i := 0; i < code.Len(); i++ {
			if err := w.bw.WriteBool(code.Bit(i)); err != nil {
				return written, err
			}
		}
		written++
		w.count++
	}
	return written, nil
}

// Count is the total number of symbols written so far.
func (w *Writer) Count() int {
	return w.count
}

// Close pads the bit stream to a byte boundary and flushes it.  It does
// not close the underlying writer.
func (w *Writer) Close() error {
	return w.bw.Close()
}
