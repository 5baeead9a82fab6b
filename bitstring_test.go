package huffman

import (
	"testing"
)

func TestBitstring_String(t *testing.T) {
	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: "\"\""},
		{bits: "0", expect: "\"0\""},
		{bits: "1", expect: "\"1\""},
		{bits: "10110", expect: "\"10110\""},
	}
	for _, row := range testData {
		bs := MakeBitstring(row.bits)
		if actual := bs.String(); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
		if bs.Len() != len(row.bits) {
			t.Errorf("expected length %d, got %d", len(row.bits), bs.Len())
		}
	}
}

func TestBitstring_AppendBitstring(t *testing.T) {
	bs := MakeBitstring("10")
	bs.AppendBitstring(MakeBitstring("011"))

	expect := MakeBitstring("10011")
	if !bs.Equal(expect) {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, bs)
	}
}

func TestBitstring_Equal(t *testing.T) {
	a := MakeBitstring("10110")
	b := a.Clone()
	if !a.Equal(b) {
		t.Errorf("expected %s to equal its clone %s", a, b)
	}

	b.AppendBit(true)
	if a.Equal(b) {
		t.Errorf("expected %s to differ from %s", a, b)
	}

	c := MakeBitstring("10111")
	if a.Equal(c) {
		t.Errorf("expected %s to differ from %s", a, c)
	}
}

func TestBitstring_HasPrefix(t *testing.T) {
	bs := MakeBitstring("10110")

	if !bs.HasPrefix(MakeBitstring("")) {
		t.Error("expected the empty bitstring to be a prefix")
	}
	if !bs.HasPrefix(MakeBitstring("101")) {
		t.Errorf("expected \"101\" to be a prefix of %s", bs)
	}
	if bs.HasPrefix(MakeBitstring("11")) {
		t.Errorf("expected \"11\" not to be a prefix of %s", bs)
	}
	if bs.HasPrefix(MakeBitstring("101101")) {
		t.Error("expected a longer bitstring not to be a prefix")
	}
}

func TestBitstring_CrossesWordBoundary(t *testing.T) {
	var bs Bitstring
	for i := 0; i < 70; i++ {
		bs.AppendBit(i%2 == 1)
	}

	if bs.Len() != 70 {
		t.Errorf("expected length 70, got %d", bs.Len())
	}
	for i := 0; i < 70; i++ {
		if bs.Bit(i) != (i%2 == 1) {
			t.Errorf("wrong bit at index %d", i)
		}
	}
	if !bs.Equal(bs.Clone()) {
		t.Error("expected a long bitstring to equal its clone")
	}
}
