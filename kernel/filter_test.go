package kernel

import "testing"

func TestFilterGTMatchesMaskDuality(t *testing.T) {
	v := []float64{1, 5, -3, 9, 4, 4.0001, 0, 1000}
	threshold := 4.0

	mask := make([]byte, len(v))
	FilterMaskGT(v, threshold, mask)

	idxFromMask := make([]int32, len(v))
	nMask := IndicesFromMask(mask, idxFromMask)
	idxFromMask = idxFromMask[:nMask]

	idxDirect := make([]int32, len(v))
	nDirect := FilterGT(v, threshold, idxDirect)
	idxDirect = idxDirect[:nDirect]

	if nMask != nDirect {
		t.Fatalf("count mismatch: mask=%d direct=%d", nMask, nDirect)
	}
	for i := range idxFromMask {
		if idxFromMask[i] != idxDirect[i] {
			t.Fatalf("index mismatch at %d: mask=%d direct=%d", i, idxFromMask[i], idxDirect[i])
		}
	}
	if got := CountMask(mask); got != nMask {
		t.Fatalf("CountMask() = %d, want %d", got, nMask)
	}
}

func TestFilterLT(t *testing.T) {
	v := []int32{10, -1, 3, 7, -8, 0}
	out := make([]int32, len(v))
	n := FilterLT(v, 0, out)
	want := []int32{1, 4}
	if n != len(want) {
		t.Fatalf("n = %d, want %d", n, len(want))
	}
	for i, w := range want {
		if out[i] != w {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], w)
		}
	}
}

func TestFilterGTEmpty(t *testing.T) {
	var v []float64
	out := make([]int32, 0)
	if n := FilterGT(v, 0, out); n != 0 {
		t.Fatalf("FilterGT on empty input returned %d, want 0", n)
	}
}

func TestFilterMaskAllFalseWhenNoneMatch(t *testing.T) {
	v := []float64{1, 2, 3}
	mask := make([]byte, len(v))
	FilterMaskGT(v, 100, mask)
	for i, b := range mask {
		if b != 0 {
			t.Fatalf("mask[%d] = %d, want 0", i, b)
		}
	}
}
