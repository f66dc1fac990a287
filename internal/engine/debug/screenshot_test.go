package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
}

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "scene")
	sc.now = fixedClock

	// 1x2: bottom row red, top row blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "scene_2026-10-19_12-30-00.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue")
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom pixel should be red")
	}
}

func TestCaptureNumbersCollisions(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "scene")
	sc.now = fixedClock

	pixels := make([]byte, 4)
	first, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("second capture overwrote the first")
	}
	if filepath.Base(second) != "scene_2026-10-19_12-30-00_2.png" {
		t.Errorf("unexpected name %s", second)
	}
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "scene")
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}
