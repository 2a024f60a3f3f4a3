// math/math_test.go
// Copyright(c) 2025 jetsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestClamp(t *testing.T) {
	if v := Clamp(float32(250), 50, 200); v != 200 {
		t.Errorf("Clamp high: got %f, expected 200", v)
	}
	if v := Clamp(float32(10), 50, 200); v != 50 {
		t.Errorf("Clamp low: got %f, expected 50", v)
	}
	if v := Clamp(float32(125), 50, 200); v != 125 {
		t.Errorf("Clamp mid: got %f, expected 125", v)
	}
}

func TestNormalize2f(t *testing.T) {
	if v := Normalize2f([2]float32{0, 0}); v != [2]float32{0, 0} {
		t.Errorf("Normalize of zero vector: got %v, expected zero", v)
	}
	v := Normalize2f([2]float32{3, 4})
	if Abs(Length2f(v)-1) > 1e-6 {
		t.Errorf("Normalized length: got %f, expected 1", Length2f(v))
	}
}

func TestExtent2DInside(t *testing.T) {
	e := Extent2D{P0: [2]float32{5, 0}, P1: [2]float32{15, 10}}

	testCases := []struct {
		p        [2]float32
		expected bool
	}{
		{[2]float32{10, 5}, true},
		{[2]float32{5, 0}, true}, // boundary counts
		{[2]float32{15, 10}, true},
		{[2]float32{4.99, 5}, false},
		{[2]float32{10, 10.01}, false},
		{[2]float32{-3, -3}, false},
	}
	for _, tc := range testCases {
		if got := e.Inside(tc.p); got != tc.expected {
			t.Errorf("Inside(%v): got %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestExtent2DIntersectSegment(t *testing.T) {
	e := Extent2D{P0: [2]float32{5, 0}, P1: [2]float32{15, 10}}

	testCases := []struct {
		name   string
		p0, p1 [2]float32
		hit    bool
	}{
		{"ThroughMiddle", [2]float32{0, 5}, [2]float32{20, 5}, true},
		{"EndsInside", [2]float32{0, 5}, [2]float32{10, 5}, true},
		{"StartsInside", [2]float32{10, 5}, [2]float32{30, 5}, true},
		{"MissesAbove", [2]float32{0, 15}, [2]float32{20, 15}, false},
		{"ShortOfBox", [2]float32{0, 5}, [2]float32{3, 5}, false},
		{"VerticalThrough", [2]float32{10, -5}, [2]float32{10, 15}, true},
		{"VerticalMiss", [2]float32{2, -5}, [2]float32{2, 15}, false},
		{"DegeneratePointInside", [2]float32{10, 5}, [2]float32{10, 5}, true},
		{"DegeneratePointOutside", [2]float32{2, 5}, [2]float32{2, 5}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hit, t0, t1 := e.IntersectSegment(tc.p0, tc.p1)
			if hit != tc.hit {
				t.Errorf("got hit=%v, expected %v", hit, tc.hit)
			}
			if hit && (t0 < 0 || t1 > 1 || t0 > t1) {
				t.Errorf("parametric range [%f, %f] outside [0,1]", t0, t1)
			}
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	refSampled := func(p, v, w [2]float32) float32 {
		const n = 8192
		dmin := float32(1e30)
		for i := 0; i < n; i++ {
			t := float32(i) / float32(n-1)
			pp := Lerp2f(t, v, w)
			dmin = min(dmin, Distance2f(pp, p))
		}
		return dmin
	}

	cases := []struct {
		p, v, w [2]float32
	}{
		{[2]float32{0, 0}, [2]float32{1, 1}, [2]float32{2, 2}},
		{[2]float32{5, 0}, [2]float32{0, 5}, [2]float32{10, 5}},
		{[2]float32{3, 3}, [2]float32{3, 3}, [2]float32{3, 3}}, // degenerate segment
	}
	for _, c := range cases {
		got := PointSegmentDistance(c.p, c.v, c.w)
		want := refSampled(c.p, c.v, c.w)
		if Abs(got-want) > 1e-3 {
			t.Errorf("PointSegmentDistance(%v, %v, %v): got %f, expected %f",
				c.p, c.v, c.w, got, want)
		}
	}
}

func TestRotator2f(t *testing.T) {
	rot := Rotator2f(90)
	p := rot([2]float32{1, 0})
	if Abs(p[0]) > 1e-6 || Abs(p[1]+1) > 1e-6 {
		t.Errorf("rotate (1,0) by 90: got %v", p)
	}
}
