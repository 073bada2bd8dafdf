package utils

import (
	"math"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

func AssertClose(t *testing.T, a float64, b float64, epsilon float64) {
	if math.Abs(a-b) > epsilon {
		t.Fatalf("Expected close (eps %v): %v != %v\n", epsilon, a, b)
	}
}

func AssertNaN(t *testing.T, a float64) {
	if !math.IsNaN(a) {
		t.Fatalf("Expected NaN, got %v\n", a)
	}
}
