package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG encodes a small solid image for background stamp tests.
func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestPageWriter_StartsAtTopMargin(t *testing.T) {
	w, err := NewPageWriter(nil)
	if err != nil {
		t.Fatalf("NewPageWriter: %v", err)
	}
	if got := w.Y(); got != PageHeight-TopMargin {
		t.Errorf("initial Y = %v, want %v", got, PageHeight-TopMargin)
	}
	if got := w.PageCount(); got != 1 {
		t.Errorf("initial page count = %d, want 1", got)
	}
}

func TestPageWriter_EnsureSpace(t *testing.T) {
	tests := []struct {
		name        string
		advance     float64
		required    float64
		expectBreak bool
	}{
		{"plenty of room", 0, 100, false},
		{"exactly fits", 0, PageHeight - TopMargin - BottomMargin, false},
		{"one point short", 0, PageHeight - TopMargin - BottomMargin + 1, true},
		{"near bottom with room", PageHeight - TopMargin - BottomMargin - 10, 5, false},
		{"near bottom without room", PageHeight - TopMargin - BottomMargin - 1, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewPageWriter(nil)
			if err != nil {
				t.Fatalf("NewPageWriter: %v", err)
			}
			w.Advance(tt.advance)

			broke := w.EnsureSpace(tt.required)
			if broke != tt.expectBreak {
				t.Errorf("EnsureSpace(%v) = %v, want %v", tt.required, broke, tt.expectBreak)
			}
			if tt.expectBreak {
				if got := w.PageCount(); got != 2 {
					t.Errorf("page count after break = %d, want 2", got)
				}
				if got := w.Y(); got != PageHeight-TopMargin {
					t.Errorf("Y after break = %v, want reset to %v", got, PageHeight-TopMargin)
				}
			} else if got := w.PageCount(); got != 1 {
				t.Errorf("page count = %d, want 1", got)
			}
		})
	}
}

func TestPageWriter_AdvanceMovesCursorDown(t *testing.T) {
	w, err := NewPageWriter(nil)
	if err != nil {
		t.Fatalf("NewPageWriter: %v", err)
	}
	start := w.Y()
	w.Advance(LineHeight)
	if got := w.Y(); got != start-LineHeight {
		t.Errorf("Y after Advance = %v, want %v", got, start-LineHeight)
	}
}

func TestPageWriter_RejectsUnknownBackgroundFormat(t *testing.T) {
	if _, err := NewPageWriter([]byte("not an image")); err == nil {
		t.Fatal("expected error for unsupported background bytes")
	}
}

func TestPageWriter_AcceptsPNGBackground(t *testing.T) {
	w, err := NewPageWriter(testPNG(t))
	if err != nil {
		t.Fatalf("NewPageWriter with PNG background: %v", err)
	}
	if _, err := w.Output(); err != nil {
		t.Fatalf("Output: %v", err)
	}
}

func TestPageWriter_OutputProducesPDF(t *testing.T) {
	w, err := NewPageWriter(nil)
	if err != nil {
		t.Fatalf("NewPageWriter: %v", err)
	}
	w.Text(LeftMargin, "hello")

	out, err := w.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
	if string(out[:5]) != "%PDF-" {
		t.Errorf("output does not start with PDF header: %q", out[:5])
	}
}
