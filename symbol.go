package huffman

import (
	"unicode"
)

// Symbol represents a symbol in the coded alphabet: one Unicode scalar
// value of the input text.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol marks tree nodes that carry no symbol.
const InvalidSymbol = Symbol(-1)
