package groupby

import "testing"

func TestComputeAssignsGroupIdentity(t *testing.T) {
	hashes := []uint64{10, 20, 10, 30, 20, 10}
	r := Compute(hashes)
	if int(r.NumGroups) != 3 {
		t.Fatalf("NumGroups = %d, want 3", r.NumGroups)
	}
	if got := max32(r.GroupIDs) + 1; got != r.NumGroups {
		t.Fatalf("max(group_ids)+1 = %d, want NumGroups = %d", got, r.NumGroups)
	}
	// Same hash -> same group.
	if r.GroupIDs[0] != r.GroupIDs[2] || r.GroupIDs[2] != r.GroupIDs[5] {
		t.Fatal("rows with hash 10 should share a group id")
	}
	if r.GroupIDs[1] != r.GroupIDs[4] {
		t.Fatal("rows with hash 20 should share a group id")
	}
	if r.GroupIDs[0] == r.GroupIDs[1] || r.GroupIDs[0] == r.GroupIDs[3] {
		t.Fatal("distinct hashes assigned the same group id")
	}
}

func max32(v []uint32) uint32 {
	var m uint32
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}

func TestComputeWithKeysDisambiguatesCollisions(t *testing.T) {
	// Same hash, different keys: must NOT merge.
	hashes := []uint64{1, 1, 1}
	keys := []int64{100, 200, 100}
	r := ComputeWithKeys(hashes, keys)
	if r.NumGroups != 2 {
		t.Fatalf("NumGroups = %d, want 2", r.NumGroups)
	}
	if r.GroupIDs[0] != r.GroupIDs[2] {
		t.Fatal("equal keys with equal hash should share a group")
	}
	if r.GroupIDs[0] == r.GroupIDs[1] {
		t.Fatal("different keys sharing a hash should NOT share a group")
	}
}

func TestComputeExtFirstRowAndCounts(t *testing.T) {
	hashes := []uint64{5, 7, 5, 5, 7}
	ext := ComputeExt(hashes)
	for g := uint32(0); g < ext.NumGroups; g++ {
		firstRow := ext.FirstRowIdx[g]
		if ext.GroupIDs[firstRow] != g {
			t.Fatalf("group_ids[first_row_idx[%d]] = %d, want %d", g, ext.GroupIDs[firstRow], g)
		}
	}
	var totalCount uint32
	for _, c := range ext.GroupCounts {
		totalCount += c
	}
	if int(totalCount) != len(hashes) {
		t.Fatalf("sum(group_counts) = %d, want %d", totalCount, len(hashes))
	}
}

func TestSumByGroup(t *testing.T) {
	groupIDs := []uint32{0, 1, 0, 1, 0}
	values := []float64{1, 10, 2, 20, 3}
	sums := SumByGroup(groupIDs, values, 2)
	if sums[0] != 6 {
		t.Fatalf("sums[0] = %v, want 6", sums[0])
	}
	if sums[1] != 30 {
		t.Fatalf("sums[1] = %v, want 30", sums[1])
	}
}

func TestSumByGroupParallel(t *testing.T) {
	n := 200_000
	groupIDs := make([]uint32, n)
	values := make([]float64, n)
	for i := range groupIDs {
		groupIDs[i] = uint32(i % 10)
		values[i] = 1
	}
	sums := SumByGroup(groupIDs, values, 10)
	for g, s := range sums {
		if s != float64(n/10) {
			t.Fatalf("sums[%d] = %v, want %v", g, s, float64(n/10))
		}
	}
}

func TestMinMaxByGroup(t *testing.T) {
	groupIDs := []uint32{0, 0, 1, 1, 1}
	values := []float64{5, -3, 100, 2, 50}
	mins := MinByGroup(groupIDs, values, 2)
	maxs := MaxByGroup(groupIDs, values, 2)
	if mins[0] != -3 || maxs[0] != 5 {
		t.Fatalf("group 0: min=%v max=%v, want -3/5", mins[0], maxs[0])
	}
	if mins[1] != 2 || maxs[1] != 100 {
		t.Fatalf("group 1: min=%v max=%v, want 2/100", mins[1], maxs[1])
	}
}

func TestSumByKeyEndToEnd(t *testing.T) {
	keys := []int64{1, 2, 1, 3, 2, 1}
	values := []float64{10, 20, 30, 40, 50, 60}
	result := SumByKey(keys, values, KeyHashInt[int64])

	want := map[int64]float64{1: 100, 2: 70, 3: 40}
	if int(result.NumGroups) != len(want) {
		t.Fatalf("NumGroups = %d, want %d", result.NumGroups, len(want))
	}
	for g, k := range result.Keys {
		if result.Sums[g] != want[k] {
			t.Fatalf("key %d: sum = %v, want %v", k, result.Sums[g], want[k])
		}
	}
	// Group order = first-seen order: 1, 2, 3.
	wantOrder := []int64{1, 2, 3}
	for i, k := range wantOrder {
		if result.Keys[i] != k {
			t.Fatalf("Keys[%d] = %d, want %d (first-seen order)", i, result.Keys[i], k)
		}
	}
}

func TestMultiAggByKeyEndToEnd(t *testing.T) {
	keys := []int64{1, 1, 2, 2, 2}
	values := []float64{10, 20, 5, 100, 50}
	result := MultiAggByKey(keys, values, KeyHashInt[int64])

	for g, k := range result.Keys {
		switch k {
		case 1:
			if result.Sum[g] != 30 || result.Min[g] != 10 || result.Max[g] != 20 || result.Count[g] != 2 {
				t.Fatalf("key 1 aggs wrong: %+v", result)
			}
		case 2:
			if result.Sum[g] != 155 || result.Min[g] != 5 || result.Max[g] != 100 || result.Count[g] != 3 {
				t.Fatalf("key 2 aggs wrong: %+v", result)
			}
		}
	}
}
