package bst

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestMergeSort(t *testing.T) {
	testCases := []struct {
		name  string
		input []int
	}{
		{"Empty", nil},
		{"Single", []int{42}},
		{"Sorted", []int{1, 2, 3, 4, 5}},
		{"Reversed", []int{5, 4, 3, 2, 1}},
		{"Duplicates", []int{3, 1, 3, 2, 1, 3}},
		{"Odd", []int{9, -2, 7, 0, 7, 11, -5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			original := slices.Clone(tc.input)
			got := MergeSort(tc.input, cmp.Compare[int])

			want := slices.Clone(tc.input)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("MergeSort(%v): expected %v, got %v", tc.input, want, got)
			}
			if !slices.Equal(tc.input, original) {
				t.Errorf("MergeSort mutated its input: %v", tc.input)
			}
		})
	}
}

func TestMergeSort_Descending(t *testing.T) {
	got := MergeSort([]int{101, 5, 7002, 33}, func(a, b int) int { return cmp.Compare(b, a) })
	want := []int{7002, 101, 33, 5}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMergeSort_Stable(t *testing.T) {
	type rec struct {
		key, seq int
	}
	r := rand.New(rand.NewPCG(3, 5))
	input := make([]rec, 500)
	for i := range input {
		input[i] = rec{key: r.IntN(10), seq: i}
	}

	got := MergeSort(input, func(a, b rec) int { return cmp.Compare(a.key, b.key) })
	for i := 1; i < len(got); i++ {
		if got[i].key < got[i-1].key {
			t.Fatalf("not sorted at %d: %v then %v", i, got[i-1], got[i])
		}
		if got[i].key == got[i-1].key && got[i].seq < got[i-1].seq {
			t.Fatalf("not stable at %d: %v then %v", i, got[i-1], got[i])
		}
	}
}
