// rand/rand_test.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import "testing"

func TestSeedDeterminism(t *testing.T) {
	a, b := New(12345), New(12345)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint32(), b.Uint32(); av != bv {
			t.Fatalf("iteration %d: generators diverged: %d vs %d", i, av, bv)
		}
	}
}

func TestIntnRange(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(10); v < 0 || v >= 10 {
			t.Fatalf("Intn(10) returned %d", v)
		}
	}
}

func TestFloat32Range(t *testing.T) {
	r := New(2)
	for i := 0; i < 1000; i++ {
		if v := r.Float32(); v < 0 || v > 1 {
			t.Fatalf("Float32 returned %f", v)
		}
	}
}

func TestSampleFiltered(t *testing.T) {
	r := New(3)
	s := []int{1, 2, 3, 4, 5, 6}

	if idx := SampleFiltered(r, s, func(int) bool { return false }); idx != -1 {
		t.Errorf("expected -1 with all-false predicate, got %d", idx)
	}
	for i := 0; i < 100; i++ {
		idx := SampleFiltered(r, s, func(v int) bool { return v%2 == 0 })
		if idx == -1 || s[idx]%2 != 0 {
			t.Errorf("sampled index %d does not satisfy predicate", idx)
		}
	}
}
