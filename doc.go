// Package huffman builds greedy Huffman prefix codes over Unicode text and
// uses them to encode and decode symbol streams.  The code table drives
// encoding; the tree it was derived from is the decoding authority.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
