package hal

import (
	"image"
	"image/color"
	"sync"
)

// Mono is a 1 bit per pixel buffer in SSD1306 page order: byte x + (y/8)*w
// holds column x of rows 8*(y/8) .. 8*(y/8)+7, least significant bit on top.
//
// It tracks the bounding box of pixels that changed since the last
// ResetDirty so a flush only has to move those pages.
type Mono struct {
	w, h  int
	pix   []byte
	dirty image.Rectangle
}

// NewMono returns a blank w x h buffer.
func NewMono(w, h int) *Mono {
	pages := (h + 7) / 8
	return &Mono{w: w, h: h, pix: make([]byte, w*pages)}
}

func (m *Mono) Size() (x, y int16) { return int16(m.w), int16(m.h) }

// SetPixel sets the pixel at x, y; any non-black color lights it.
func (m *Mono) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= m.w || iy < 0 || iy >= m.h {
		return
	}
	off := ix + (iy/8)*m.w
	bit := byte(1) << uint(iy%8)
	old := m.pix[off]
	if c.R != 0 || c.G != 0 || c.B != 0 {
		m.pix[off] |= bit
	} else {
		m.pix[off] &^= bit
	}
	if m.pix[off] != old {
		m.dirty = m.dirty.Union(image.Rect(ix, iy, ix+1, iy+1))
	}
}

// Pixel reports whether x, y is lit.
func (m *Mono) Pixel(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.pix[x+(y/8)*m.w]&(1<<uint(y%8)) != 0
}

// ClearBuffer unsets every pixel.
func (m *Mono) ClearBuffer() {
	for i, b := range m.pix {
		if b != 0 {
			m.dirty = image.Rect(0, 0, m.w, m.h)
		}
		m.pix[i] = 0
	}
}

// Pix returns the raw page-ordered buffer.
func (m *Mono) Pix() []byte { return m.pix }

// Dirty returns the bounding box of pixels changed since the last reset.
func (m *Mono) Dirty() image.Rectangle { return m.dirty }

// ResetDirty marks the buffer as flushed.
func (m *Mono) ResetDirty() { m.dirty = image.Rectangle{} }

// monoFramebuffer is a Display for simulated panels: drawing goes to a back
// buffer, Display copies the dirty pages to the front buffer the viewer reads.
type monoFramebuffer struct {
	*Mono

	mu      sync.Mutex
	front   []byte
	flushes int
}

func newMonoFramebuffer(w, h int) *monoFramebuffer {
	back := NewMono(w, h)
	return &monoFramebuffer{Mono: back, front: make([]byte, len(back.pix))}
}

func (f *monoFramebuffer) Display() error {
	r := f.Dirty()
	if r.Empty() {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for page := r.Min.Y / 8; page <= (r.Max.Y-1)/8; page++ {
		row := page * f.w
		copy(f.front[row+r.Min.X:row+r.Max.X], f.pix[row+r.Min.X:row+r.Max.X])
	}
	f.ResetDirty()
	f.flushes++
	return nil
}

// snapshot copies the front buffer into dst.
func (f *monoFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}

// image returns the front buffer as a grayscale image.
func (f *monoFramebuffer) image() *image.Gray {
	front := make([]byte, len(f.front))
	f.snapshot(front)

	img := image.NewGray(image.Rect(0, 0, f.w, f.h))
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if front[x+(y/8)*f.w]&(1<<uint(y%8)) != 0 {
				img.Pix[y*img.Stride+x] = 0xFF
			}
		}
	}
	return img
}
