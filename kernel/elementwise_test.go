package kernel

import "testing"

func TestAddArray(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	out := make([]float64, 3)
	AddArray(a, b, out)
	want := []float64{11, 22, 33}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestMulScalar(t *testing.T) {
	a := []int32{1, 2, 3}
	out := make([]int32, 3)
	MulScalar(a, 5, out)
	want := []int32{5, 10, 15}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestCompareScalarGT(t *testing.T) {
	a := []float64{1, 5, 3, 9}
	mask := make([]byte, len(a))
	CompareScalar(a, CompareGT, 3, mask)
	want := []byte{0, 1, 0, 1}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("mask[%d] = %d, want %d", i, mask[i], want[i])
		}
	}
}

func TestCompareArrayEQ(t *testing.T) {
	a := []int64{1, 2, 3}
	b := []int64{1, 5, 3}
	mask := make([]byte, len(a))
	CompareArray(a, b, CompareEQ, mask)
	want := []byte{1, 0, 1}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("mask[%d] = %d, want %d", i, mask[i], want[i])
		}
	}
}

func TestCompareScalarAllOps(t *testing.T) {
	a := []float64{3}
	mask := make([]byte, 1)
	cases := []struct {
		op   CompareOp
		want byte
	}{
		{CompareGT, 0},
		{CompareGE, 1},
		{CompareLT, 0},
		{CompareLE, 1},
		{CompareEQ, 1},
		{CompareNE, 0},
	}
	for _, c := range cases {
		CompareScalar(a, c.op, 3, mask)
		if mask[0] != c.want {
			t.Fatalf("op %v: mask[0] = %d, want %d", c.op, mask[0], c.want)
		}
	}
}
