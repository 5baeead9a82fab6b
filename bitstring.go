package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bitstring is a growable sequence of bits.  Bit 0 is the first bit
// appended and the first bit consumed, i.e. the root-most bit of a code.
//
// The zero value is an empty Bitstring ready for use.  Appending to a copy
// that shares storage with another Bitstring corrupts both; Clone first.
type Bitstring struct {
	words []uint64
	size  int
}

// MakeBitstring is a convenience function that constructs a Bitstring from
// a string of '0' and '1' characters.
func MakeBitstring(s string) Bitstring {
	var bs Bitstring
	for _, ch := range s {
		assert.Assertf(ch == '0' || ch == '1', "invalid bit character %q", ch)
		bs.AppendBit(ch == '1')
	}
	return bs
}

// Len is the number of bits in the sequence.
func (bs Bitstring) Len() int {
	return bs.size
}

// Bit returns the i'th bit.
func (bs Bitstring) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < bs.size, "bit index %d out of range [0, %d)", i, bs.size)
	return bs.words[i>>6]&(1<<uint(i&63)) != 0
}

// AppendBit appends a single bit.
func (bs *Bitstring) AppendBit(bit bool) {
	index := bs.size >> 6
	if index == len(bs.words) {
		bs.words = append(bs.words, 0)
	}
	if bit {
		bs.words[index] |= 1 << uint(bs.size&63)
	}
	bs.size++
}

// AppendBitstring appends every bit of other, in order.
func (bs *Bitstring) AppendBitstring(other Bitstring) {
	for i := 0; i < other.size; i++ {
		bs.AppendBit(other.Bit(i))
	}
}

// Clone returns a copy of bs that shares no storage with it.
func (bs Bitstring) Clone() Bitstring {
	words := make([]uint64, len(bs.words))
	copy(words, bs.words)
	return Bitstring{words: words, size: bs.size}
}

// Equal reports whether bs and other hold the same bit sequence.
func (bs Bitstring) Equal(other Bitstring) bool {
	if bs.size != other.size {
		return false
	}
	whole := bs.size >> 6
	for i := 0; i < whole; i++ {
		if bs.words[i] != other.words[i] {
			return false
		}
	}
	if rem := uint(bs.size & 63); rem != 0 {
		mask := uint64(1)<<rem - 1
		if bs.words[whole]&mask != other.words[whole]&mask {
			return false
		}
	}
	return true
}

// HasPrefix reports whether bs begins with the bits of prefix.
func (bs Bitstring) HasPrefix(prefix Bitstring) bool {
	if prefix.size > bs.size {
		return false
	}
	for i := 0; i < prefix.size; i++ {
		if bs.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Bitstring.
func (bs Bitstring) String() string {
	if bs.size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(bs.size)
	for i := 0; i < bs.size; i++ {
		if bs.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Bitstring{}
