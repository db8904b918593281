package flycam

import (
	"math"
	"math/rand"
	"testing"
)

func TestVectorRotateMatchesRodrigues(t *testing.T) {

	// The world axes take a shortcut in Rotate(); they should agree with the general formula.
	axes := []Vector{WorldRight, WorldUp, WorldBackward}

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {

		vec := NewVector(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		angle := rng.Float64()*4*math.Pi - 2*math.Pi

		for _, axis := range axes {

			// Scaling the axis skips the shortcut, but shouldn't change the result.
			general := vec.Rotate(axis.Scale(3), angle)
			shortcut := vec.Rotate(axis, angle)

			if !general.Equals(shortcut) {
				t.Fatalf("rotating %s around %s by %f: shortcut %s, general %s", vec, axis, angle, shortcut, general)
			}

		}

	}

}

func TestVectorRotateCounterClockwise(t *testing.T) {

	// Looking down +Y from above, a quarter turn counter-clockwise takes +X to -Z.
	if got := WorldRight.Rotate(WorldUp, math.Pi/2); !got.Equals(NewVector(0, 0, -1)) {
		t.Fatal("expected {0, 0, -1}, got", got)
	}

	if got := WorldRight.Rotate(WorldBackward, math.Pi/2); !got.Equals(WorldUp) {
		t.Fatal("expected {0, 1, 0}, got", got)
	}

}

func TestVectorRotateZeroAxis(t *testing.T) {
	vec := NewVector(1, 2, 3)
	if got := vec.Rotate(NewVectorZero(), 1); got != vec {
		t.Fatal("rotating around a zero axis should leave the vector alone, got", got)
	}
}

func TestVectorCross(t *testing.T) {
	if got := WorldRight.Cross(WorldUp); !got.Equals(WorldBackward) {
		t.Fatal("X cross Y should be Z, got", got)
	}
	if got := WorldUp.Cross(WorldRight); !got.Equals(WorldBackward.Invert()) {
		t.Fatal("Y cross X should be -Z, got", got)
	}
}

func TestVectorUnit(t *testing.T) {

	if got := NewVector(3, 0, 4).Unit(); !got.Equals(NewVector(0.6, 0, 0.8)) {
		t.Fatal("expected {0.6, 0, 0.8}, got", got)
	}

	if got := NewVectorZero().Unit(); !got.IsZero() {
		t.Fatal("normalizing a zero vector should give a zero vector, got", got)
	}

}

func BenchmarkVectorRotate(b *testing.B) {

	b.ReportAllocs()

	vec := NewVector(0.3, 0.5, 0.1)
	axis := NewVector(1, 1, 0.2)

	for i := 0; i < b.N; i++ {
		vec = vec.Rotate(axis, 0.01)
	}

}

func TestVectorLerp(t *testing.T) {

	start := NewVector(0, 2, -4)
	end := NewVector(10, 2, 4)

	if got := start.Lerp(end, 0.25); !got.Equals(NewVector(2.5, 2, -2)) {
		t.Fatal("expected {2.5, 2, -2}, got", got)
	}

	if got := start.Lerp(end, 0); got != start {
		t.Fatal("expected the start vector, got", got)
	}

	if got := start.Lerp(end, 1); !got.Equals(end) {
		t.Fatal("expected the end vector, got", got)
	}

}
