package shapes_test

import (
	"testing"

	"github.com/katalvlaran/shapecalc/primitives"
	"github.com/katalvlaran/shapecalc/shapes"
)

var sink float64

// BenchmarkNewTriangle measures validation cost on the success path.
func BenchmarkNewTriangle(b *testing.B) {
	s1, s2, s3 := primitives.MustLineSegment(3), primitives.MustLineSegment(4), primitives.MustLineSegment(5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shapes.NewTriangle(s1, s2, s3); err != nil {
			b.Fatalf("NewTriangle failed: %v", err)
		}
	}
}

// BenchmarkTriangle_CalculateArea measures Heron's formula.
func BenchmarkTriangle_CalculateArea(b *testing.B) {
	tri, err := shapes.NewTriangle(primitives.MustLineSegment(5), primitives.MustLineSegment(5), primitives.MustLineSegment(5))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = tri.CalculateArea()
	}
}

// BenchmarkTriangle_IsRightTriangle measures the three-rotation check.
func BenchmarkTriangle_IsRightTriangle(b *testing.B) {
	tri, err := shapes.NewTriangle(primitives.MustLineSegment(6), primitives.MustLineSegment(8), primitives.MustLineSegment(10))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tri.IsRightTriangle() {
			b.Fatal("6-8-10 must be right")
		}
	}
}

// BenchmarkCircle_CalculateArea measures π·r².
func BenchmarkCircle_CalculateArea(b *testing.B) {
	c, err := shapes.NewCircle(primitives.MustLineSegment(10))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = c.CalculateArea()
	}
}
