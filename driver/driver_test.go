package driver

import (
	"testing"

	"github.com/NerdMeNot/galleon/blitz"
	"github.com/NerdMeNot/galleon/kernel"
)

func TestReduceSequentialBelowThreshold(t *testing.T) {
	blitz.Teardown()
	v := make([]int64, 10)
	for i := range v {
		v[i] = int64(i + 1)
	}
	got := Reduce(len(v), func(start, end int) int64 {
		return kernel.Sum(v[start:end])
	}, func(a, b int64) int64 { return a + b })
	if got != 55 {
		t.Fatalf("Reduce sum = %d, want 55", got)
	}
}

func TestReduceParallelMatchesSequential(t *testing.T) {
	blitz.Teardown()
	defer blitz.Teardown()

	n := 300_000
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(i % 101)
	}
	want := kernel.Sum(v)

	got := Reduce(n, func(start, end int) int64 {
		return kernel.Sum(v[start:end])
	}, func(a, b int64) int64 { return a + b })

	if got != want {
		t.Fatalf("parallel Reduce = %d, want %d (sequential)", got, want)
	}
	if !blitz.Initialized() {
		t.Fatal("expected pool to be initialized by a large Reduce call")
	}
}

func TestMapCoversEveryElement(t *testing.T) {
	blitz.Teardown()
	defer blitz.Teardown()

	n := 250_000
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = float64(i)
		b[i] = 1
	}
	out := make([]float64, n)
	Map(n, func(start, end int) {
		kernel.AddArray(a[start:end], b[start:end], out[start:end])
	})
	for i := 0; i < n; i += 9973 {
		if out[i] != a[i]+1 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], a[i]+1)
		}
	}
}

func TestFilterConcatenatesGlobalIndicesInOrder(t *testing.T) {
	blitz.Teardown()
	defer blitz.Teardown()

	n := 200_000
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i % 7)
	}
	threshold := 5.0

	got := Filter(n, func(start, end int, outLocal []int32) int {
		return kernel.FilterGT(v[start:end], threshold, outLocal)
	})

	want := make([]int32, 0, n/7)
	for i, x := range v {
		if x > threshold {
			want = append(want, int32(i))
		}
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("indices not strictly ascending at %d: %d <= %d", i, got[i], got[i-1])
		}
	}
}

func TestFilterSequentialSmallInput(t *testing.T) {
	blitz.Teardown()
	v := []float64{5, 1, 7, 3, 9}
	got := Filter(len(v), func(start, end int, outLocal []int32) int {
		return kernel.FilterGT(v[start:end], 3, outLocal)
	})
	want := []int32{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
