package hal

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

func TestMonoPageLayout(t *testing.T) {
	m := NewMono(128, 64)

	m.SetPixel(3, 0, white)
	m.SetPixel(3, 9, white)

	if got := m.Pix()[3]; got != 0x01 {
		t.Fatalf("page 0 col 3 = %#x, want 0x01", got)
	}
	if got := m.Pix()[128+3]; got != 0x02 {
		t.Fatalf("page 1 col 3 = %#x, want 0x02", got)
	}
	if !m.Pixel(3, 9) || m.Pixel(4, 9) {
		t.Fatal("Pixel() disagrees with SetPixel()")
	}

	m.SetPixel(3, 9, black)
	if m.Pixel(3, 9) {
		t.Fatal("pixel still lit after clearing")
	}
}

func TestMonoDirtyTracksChangesOnly(t *testing.T) {
	m := NewMono(128, 64)

	m.SetPixel(10, 20, black)
	if !m.Dirty().Empty() {
		t.Fatalf("Dirty() = %v after no-op write, want empty", m.Dirty())
	}

	m.SetPixel(10, 20, white)
	m.SetPixel(30, 5, white)
	if got, want := m.Dirty(), image.Rect(10, 5, 31, 21); got != want {
		t.Fatalf("Dirty() = %v, want %v", got, want)
	}

	m.ResetDirty()
	m.SetPixel(10, 20, white)
	if !m.Dirty().Empty() {
		t.Fatalf("Dirty() = %v after rewriting same value, want empty", m.Dirty())
	}

	m.SetPixel(-1, 0, white)
	m.SetPixel(128, 64, white)
	if !m.Dirty().Empty() {
		t.Fatal("out of range writes marked the buffer dirty")
	}
}

func TestMonoFramebufferFlushCopiesFrame(t *testing.T) {
	fb := newMonoFramebuffer(128, 64)

	fb.SetPixel(0, 0, white)
	fb.SetPixel(127, 63, white)
	if err := fb.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}

	img := fb.image()
	if img.GrayAt(0, 0).Y != 0xFF || img.GrayAt(127, 63).Y != 0xFF {
		t.Fatal("front buffer missing flushed pixels")
	}
	if img.GrayAt(64, 32).Y != 0 {
		t.Fatal("front buffer has a pixel that was never drawn")
	}

	// Drawing without a flush must not reach the front buffer.
	fb.SetPixel(64, 32, white)
	if fb.image().GrayAt(64, 32).Y != 0 {
		t.Fatal("unflushed pixel visible")
	}
	if err := fb.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	img = fb.image()
	if img.GrayAt(64, 32).Y != 0xFF || img.GrayAt(0, 0).Y != 0xFF {
		t.Fatal("second flush lost pixels")
	}
	if fb.flushes != 2 {
		t.Fatalf("flushes = %d, want 2", fb.flushes)
	}

	// Nothing changed: flush is a no-op.
	if err := fb.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if fb.flushes != 2 {
		t.Fatalf("flushes = %d after clean flush, want 2", fb.flushes)
	}
}

func TestMonoClearBuffer(t *testing.T) {
	m := NewMono(128, 64)
	m.ClearBuffer()
	if !m.Dirty().Empty() {
		t.Fatal("clearing a blank buffer marked it dirty")
	}
	m.SetPixel(5, 5, white)
	m.ResetDirty()
	m.ClearBuffer()
	if m.Pixel(5, 5) {
		t.Fatal("pixel survived ClearBuffer")
	}
	if m.Dirty() != image.Rect(0, 0, 128, 64) {
		t.Fatalf("Dirty() = %v, want full panel", m.Dirty())
	}
}
