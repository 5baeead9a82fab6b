package huffman

import (
	"errors"
	"testing"
)

func TestBuildTree_EmptyInput(t *testing.T) {
	if _, err := BuildTree(FreqMap{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := BuildTreeFromString(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestBuildTree_WeightInvariant(t *testing.T) {
	tree, err := BuildTreeFromString("abracadabra")
	if err != nil {
		t.Fatalf("BuildTreeFromString failed: %v", err)
	}

	if tree.Weight != 11 {
		t.Errorf("expected root weight 11, got %d", tree.Weight)
	}
	checkWeights(t, tree)
}

func checkWeights(t *testing.T, n *Node) {
	t.Helper()
	if n.IsLeaf() {
		if n.Weight <= 0 {
			t.Errorf("leaf %s has non-positive weight", n)
		}
		return
	}
	if n.Left == nil || n.Right == nil {
		t.Fatalf("internal node %s is missing a child", n)
	}
	if n.Weight != n.Left.Weight+n.Right.Weight {
		t.Errorf("node %s: weight %d != %d + %d", n, n.Weight, n.Left.Weight, n.Right.Weight)
	}
	checkWeights(t, n.Left)
	checkWeights(t, n.Right)
}

func TestBuildTree_Deterministic(t *testing.T) {
	freqs := CountSymbols("abracadabra")

	a, err := BuildTree(freqs)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	b, err := BuildTree(freqs)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	if !sameShape(a, b) {
		t.Error("expected two builds from the same frequencies to be structurally identical")
	}

	dumpA := dumpTable(t, NewCodeTable(a))
	dumpB := dumpTable(t, NewCodeTable(b))
	if dumpA != dumpB {
		t.Errorf("expected identical code tables:\n\tfirst:  %s\n\tsecond: %s", dumpA, dumpB)
	}
}

func sameShape(a, b *Node) bool {
	if a.IsLeaf() != b.IsLeaf() || a.Weight != b.Weight {
		return false
	}
	if a.IsLeaf() {
		return a.Symbol == b.Symbol
	}
	return sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree, err := BuildTreeFromString("aaaa")
	if err != nil {
		t.Fatalf("BuildTreeFromString failed: %v", err)
	}

	if !tree.IsLeaf() {
		t.Fatalf("expected a lone leaf, got %s", tree)
	}
	if tree.Symbol != 'a' || tree.Weight != 4 {
		t.Errorf("expected leaf{'a', weight=4}, got %s", tree)
	}
}

func TestBuildTree_MergeConvention(t *testing.T) {
	tree, err := BuildTreeFromString("ab")
	if err != nil {
		t.Fatalf("BuildTreeFromString failed: %v", err)
	}

	// Equal weights: 'a' ranks first by code point, so it is popped
	// first and becomes the left child.
	if tree.IsLeaf() {
		t.Fatalf("expected an internal root, got %s", tree)
	}
	if tree.Left.Symbol != 'a' {
		t.Errorf("expected left child 'a', got %s", tree.Left)
	}
	if tree.Right.Symbol != 'b' {
		t.Errorf("expected right child 'b', got %s", tree.Right)
	}
}
