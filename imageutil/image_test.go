package imageutil

import (
	"image/color"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestPackedRoundTrip(t *testing.T) {
	colors := []RGB{
		{},
		{R: 255, G: 255, B: 255},
		{R: 1, G: 2, B: 3},
		{R: 200, G: 40, B: 40},
	}
	for _, c := range colors {
		if got := RGBFromPacked(c.Packed()); got != c {
			t.Errorf("Expected %v after round trip, got %v", c, got)
		}
	}
}

func TestRGBFromColor(t *testing.T) {
	c := RGBFromColor(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := RGB{R: 10, G: 20, B: 30}
	if c != want {
		t.Errorf("Expected %v, got %v", want, c)
	}
}
