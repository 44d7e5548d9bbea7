package raster

import (
	"errors"
	"math"
	"testing"
)

// mustNew creates an image or fails the test.
func mustNew(t *testing.T, width, height int, samples []float64) *Image {
	t.Helper()
	img, err := New(width, height, samples)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, height, err)
	}
	return img
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		samples []float64
		wantErr error
	}{
		{"valid", 2, 2, []float64{1, 2, 3, 4}, nil},
		{"zero width", 0, 2, nil, ErrEmptyImage},
		{"negative height", 2, -1, nil, ErrEmptyImage},
		{"too few samples", 2, 2, []float64{1, 2, 3}, ErrSampleCount},
		{"too many samples", 1, 1, []float64{1, 2}, ErrSampleCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, tt.samples)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_CopiesSamples(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	img := mustNew(t, 2, 2, samples)

	samples[0] = 100
	if got := img.At(0, 0); got != 1 {
		t.Errorf("At(0,0) after caller mutation: got %v, want 1", got)
	}

	out := img.Samples()
	out[1] = 100
	if got := img.At(1, 0); got != 2 {
		t.Errorf("At(1,0) after Samples mutation: got %v, want 2", got)
	}
}

func TestValueRange(t *testing.T) {
	img := mustNew(t, 3, 1, []float64{5, -2, 7})
	rng := img.ValueRange()
	if rng.Min != -2 || rng.Max != 7 {
		t.Errorf("ValueRange: got %+v, want {Min:-2 Max:7}", rng)
	}
	if !rng.Contains(0) || rng.Contains(8) {
		t.Errorf("Contains: unexpected result for %+v", rng)
	}
}

func TestTransform_DoesNotMutate(t *testing.T) {
	img := mustNew(t, 2, 1, []float64{1, 2})
	out := img.Transform(func(v float64) float64 { return v * 10 })

	if img.At(0, 0) != 1 || img.At(1, 0) != 2 {
		t.Errorf("source mutated: got %v", img.Samples())
	}
	if out.At(0, 0) != 10 || out.At(1, 0) != 20 {
		t.Errorf("Transform: got %v, want [10 20]", out.Samples())
	}
	if rng := out.ValueRange(); rng.Min != 10 || rng.Max != 20 {
		t.Errorf("result range: got %+v, want {10 20}", rng)
	}
}

func TestConvolve3x3_Identity(t *testing.T) {
	img := mustNew(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	out := img.Convolve3x3(Kernel{0, 0, 0, 0, 1, 0, 0, 0, 0})

	for i, v := range out.Samples() {
		if v != float64(i+1) {
			t.Errorf("sample %d: got %v, want %v", i, v, i+1)
		}
	}
}

func TestConvolve3x3_KernelOrientation(t *testing.T) {
	// Only the top-left weight is set, so each output takes its up-left neighbour.
	img := mustNew(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	out := img.Convolve3x3(Kernel{1, 0, 0, 0, 0, 0, 0, 0, 0})

	if got := out.At(1, 1); got != 1 {
		t.Errorf("At(1,1): got %v, want 1", got)
	}
	if got := out.At(2, 2); got != 5 {
		t.Errorf("At(2,2): got %v, want 5", got)
	}
}

func TestConvolve3x3_EdgeReplication(t *testing.T) {
	img := mustNew(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	// Up-left neighbour of (0,0) is clamped back onto (0,0).
	out := img.Convolve3x3(Kernel{1, 0, 0, 0, 0, 0, 0, 0, 0})
	if got := out.At(0, 0); got != 1 {
		t.Errorf("At(0,0): got %v, want 1", got)
	}
	if got := out.At(2, 0); got != 2 {
		t.Errorf("At(2,0): got %v, want 2", got)
	}

	flat, err := NewUniform(4, 3, 42)
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}
	box := flat.Convolve3x3(Kernel{1, 1, 1, 1, 1, 1, 1, 1, 1})
	for i, v := range box.Samples() {
		if v != 42*9 {
			t.Errorf("box sample %d: got %v, want %v", i, v, 42*9)
		}
	}
}

func TestConvolve3x3_SingleSample(t *testing.T) {
	img := mustNew(t, 1, 1, []float64{3})
	out := img.Convolve3x3(Kernel{0, -1, 0, -1, 5, -1, 0, -1, 0})
	if got := out.At(0, 0); got != 3 {
		t.Errorf("At(0,0): got %v, want 3", got)
	}
}

func TestCompose(t *testing.T) {
	a := mustNew(t, 2, 1, []float64{3, 0})
	b := mustNew(t, 2, 1, []float64{4, 2})

	out, err := a.Compose(b, func(x, y float64) float64 { return math.Sqrt(x*x + y*y) })
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if out.At(0, 0) != 5 || out.At(1, 0) != 2 {
		t.Errorf("Compose: got %v, want [5 2]", out.Samples())
	}
}

func TestCompose_GeometryMismatch(t *testing.T) {
	a := mustNew(t, 2, 1, []float64{1, 2})
	b := mustNew(t, 1, 2, []float64{1, 2})

	if _, err := a.Compose(b, func(x, y float64) float64 { return x }); !errors.Is(err, ErrGeometryMismatch) {
		t.Errorf("error: got %v, want %v", err, ErrGeometryMismatch)
	}
	if _, err := a.Compose(nil, func(x, y float64) float64 { return x }); !errors.Is(err, ErrGeometryMismatch) {
		t.Errorf("nil other: got %v, want %v", err, ErrGeometryMismatch)
	}
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	img := mustNew(t, 1, 1, []float64{1})
	defer func() {
		if recover() == nil {
			t.Error("At(1,0) did not panic")
		}
	}()
	img.At(1, 0)
}
