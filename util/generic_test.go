// util/generic_test.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 {
		t.Errorf("Select(true) returned second value")
	}
	if Select(false, 1, 2) != 2 {
		t.Errorf("Select(false) returned first value")
	}
}

func TestFilterSliceInPlace(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	s = FilterSliceInPlace(s, func(v int) bool { return v%2 == 0 })
	if !slices.Equal(s, []int{2, 4, 6}) {
		t.Errorf("got %v, expected [2 4 6]", s)
	}

	var empty []int
	if got := FilterSliceInPlace(empty, func(int) bool { return true }); len(got) != 0 {
		t.Errorf("empty slice: got %v", got)
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[string]int{"c": 0, "a": 1, "b": 2}
	if got := SortedMapKeys(m); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v", got)
	}
}

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, func(v int) int { return v * v })
	if !slices.Equal(got, []int{1, 4, 9}) {
		t.Errorf("got %v", got)
	}
}
