package huffman

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownSymbol is returned by Encode when the input contains a symbol
// the code table has no entry for.
var ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

// Encode codes each symbol of the input in order and returns the
// concatenated bits.  The result is not self-delimiting: decoding it
// requires the tree the table was derived from, and the stream ends only
// where its bits do.
//
// A table derived from a tree built over the same input always covers every
// symbol; ErrUnknownSymbol can only occur when table and input are supplied
// independently.
func Encode(input string, table CodeTable) (Bitstring, error) {
	var out Bitstring
	for _, r := range input {
		code, found := table.Lookup(Symbol(r))
		if !found {
			return Bitstring{}, fmt.Errorf("cannot encode %s: %w", strconv.QuoteRune(r), ErrUnknownSymbol)
		}
		out.AppendBitstring(code)
	}
	return out, nil
}
