package join

import (
	"sort"
	"testing"
)

func TestInnerJoinSoundnessAndCompleteness(t *testing.T) {
	left := []int64{1, 2, 2, 3, 4}
	right := []int64{2, 2, 3, 5}

	result := InnerJoin(left, right, IntHasher[int64](), 0)
	if result == nil {
		t.Fatal("InnerJoin returned nil")
	}

	type pair struct{ l, r int }
	var got []pair
	for i := 0; i < result.NumMatches; i++ {
		l, r := int(result.LeftIndices[i]), int(result.RightIndices[i])
		if left[l] != right[r] {
			t.Fatalf("unsound match: left[%d]=%d != right[%d]=%d", l, left[l], r, right[r])
		}
		got = append(got, pair{l, r})
	}

	var want []pair
	for l := range left {
		for r := range right {
			if left[l] == right[r] {
				want = append(want, pair{l, r})
			}
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d matches, want %d", len(got), len(want))
	}
	sort.Slice(got, func(i, j int) bool {
		if got[i].l != got[j].l {
			return got[i].l < got[j].l
		}
		return got[i].r < got[j].r
	})
	sort.Slice(want, func(i, j int) bool {
		if want[i].l != want[j].l {
			return want[i].l < want[j].l
		}
		return want[i].r < want[j].r
	})
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match set mismatch at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLeftOuterJoinCompleteness(t *testing.T) {
	left := []int64{1, 2, 3, 4}
	right := []int64{2, 2, 5}

	result := LeftOuterJoin(left, right, IntHasher[int64](), 0)
	if result == nil {
		t.Fatal("LeftOuterJoin returned nil")
	}

	seen := make(map[int]int) // left row -> count of output rows
	for i := 0; i < result.NumMatches; i++ {
		l := int(result.LeftIndices[i])
		r := int(result.RightIndices[i])
		seen[l]++
		if r == -1 {
			continue
		}
		if left[l] != right[r] {
			t.Fatalf("unsound match: left[%d]=%d != right[%d]=%d", l, left[l], r, right[r])
		}
	}
	for l := range left {
		if seen[l] == 0 {
			t.Fatalf("left row %d missing from output", l)
		}
	}
	// row 0 (key 1) and row 3 (key 4) have no match on the right: exactly one
	// output row each, with right_index = -1.
	for _, l := range []int{0, 3} {
		if seen[l] != 1 {
			t.Fatalf("unmatched left row %d appeared %d times, want 1", l, seen[l])
		}
	}
	// row 1 (key 2) matches both right-side 2s: two output rows.
	if seen[1] != 2 {
		t.Fatalf("left row 1 (key 2) appeared %d times, want 2", seen[1])
	}
}

func TestInnerJoinEmptySide(t *testing.T) {
	left := []int64{1, 2, 3}
	var right []int64
	result := InnerJoin(left, right, IntHasher[int64](), 0)
	if result == nil {
		t.Fatal("InnerJoin returned nil")
	}
	if result.NumMatches != 0 {
		t.Fatalf("NumMatches = %d, want 0", result.NumMatches)
	}
}

func TestProbeTruncatesAtMaxMatches(t *testing.T) {
	left := make([]int64, 100)
	right := make([]int64, 100)
	for i := range left {
		left[i] = 1
		right[i] = 1
	}
	result := InnerJoin(left, right, IntHasher[int64](), 50)
	if !result.Truncated {
		t.Fatal("expected Truncated = true")
	}
	if result.NumMatches != 50 {
		t.Fatalf("NumMatches = %d, want 50", result.NumMatches)
	}
}

func TestInnerJoinFloatKeys(t *testing.T) {
	left := []float64{1.5, 2.5, 3.5}
	right := []float64{2.5, 2.5}
	result := InnerJoin(left, right, FloatHasher[float64](), 0)
	if result.NumMatches != 2 {
		t.Fatalf("NumMatches = %d, want 2", result.NumMatches)
	}
	for i := 0; i < result.NumMatches; i++ {
		if left[result.LeftIndices[i]] != 2.5 {
			t.Fatalf("matched left value = %v, want 2.5", left[result.LeftIndices[i]])
		}
	}
}

func TestInnerJoinParallelProbeMatchesSequential(t *testing.T) {
	n := 150_000
	left := make([]int64, n)
	right := make([]int64, n)
	for i := range left {
		left[i] = int64(i % 1000)
		right[i] = int64(i % 1000)
	}
	result := InnerJoin(left, right, IntHasher[int64](), 0)
	// Exact count: each key value k in [0,1000) appears n/1000 times on each
	// side, contributing (n/1000)^2 pairs; summed over 1000 keys.
	perKey := n / 1000
	want := perKey * perKey * 1000
	if result.NumMatches != want {
		t.Fatalf("NumMatches = %d, want %d", result.NumMatches, want)
	}
}
