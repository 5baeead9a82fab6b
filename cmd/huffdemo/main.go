// Command huffdemo builds a Huffman code for a piece of text, prints the
// code table, reports the compressed size, and verifies the round trip.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	huffman "github.com/PartyWumpus/huffman-testing"
	"github.com/PartyWumpus/huffman-testing/hufio"
)

const sampleText = `Lorem ipsum dolor sit amet, consectetur adipiscing elit. ` +
	`Proin orci lorem, lacinia sed finibus id, fermentum non nisi. ` +
	`Aenean ullamcorper, lacus eget porttitor finibus, diam nibh porttitor metus, ` +
	`sed dapibus nisi risus sed nunc.`

// charBits is the fixed-width baseline: one Unicode scalar value stored as
// a 32-bit integer.
const charBits = 32

func main() {
	inPath := flag.String("in", "", "read the input text from this file instead of the built-in sample")
	flag.Parse()

	input := sampleText
	if *inPath != "" {
		raw, err := os.ReadFile(*inPath)
		if err != nil {
			log.Fatal(err)
		}
		input = string(raw)
	}

	tree, err := huffman.BuildTreeFromString(input)
	if err != nil {
		log.Fatal(err)
	}
	table := huffman.NewCodeTable(tree)
	if _, err := table.Dump(os.Stdout); err != nil {
		log.Fatal(err)
	}

	bits, err := huffman.Encode(input, table)
	if err != nil {
		log.Fatal(err)
	}
	decoded, err := huffman.Decode(bits, tree)
	if err != nil {
		log.Fatal(err)
	}
	if decoded != input {
		log.Fatal("round trip mismatch")
	}

	numSymbols := len([]rune(input))
	originalBits := numSymbols * charBits

	// Table cost assumes each entry stores a fixed-width symbol plus its
	// code, i.e. optimal packing of the table itself.
	var tableBits int
	for _, code := range table {
		tableBits += charBits + code.Len()
	}
	compressedBits := bits.Len() + tableBits

	fmt.Printf("symbols: %d\n", numSymbols)
	fmt.Printf("before: %d bits, after: %d bits (%d stream + %d table), ratio: %.2fx original size\n",
		originalBits, compressedBits, bits.Len(), tableBits,
		float64(compressedBits)/float64(originalBits))

	var packed bytes.Buffer
	w := hufio.NewWriter(&packed, table)
	if _, err := w.WriteString(input); err != nil {
		log.Fatal(err)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
	unpacked, err := hufio.NewReader(&packed, tree).ReadString(numSymbols)
	if err != nil {
		log.Fatal(err)
	}
	if unpacked != input {
		log.Fatal("packed round trip mismatch")
	}
	fmt.Printf("packed: %d bytes\n", packed.Len())
}
