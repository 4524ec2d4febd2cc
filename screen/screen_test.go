package screen

import (
	"image/color"
	"testing"
)

type gridDisplay struct {
	px [Height][Width]bool
}

func (g *gridDisplay) Size() (x, y int16) { return Width, Height }

func (g *gridDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	g.px[y][x] = c.R != 0 || c.G != 0 || c.B != 0
}

func (g *gridDisplay) Display() error { return nil }

func (g *gridDisplay) lit() int {
	n := 0
	for y := range g.px {
		for x := range g.px[y] {
			if g.px[y][x] {
				n++
			}
		}
	}
	return n
}

func onRect(x, y, off int) bool {
	x0, y0, x1, y1 := off, off, Width-1-off, Height-1-off
	inX := x >= x0 && x <= x1
	inY := y >= y0 && y <= y1
	return (inX && (y == y0 || y == y1)) || (inY && (x == x0 || x == x1))
}

func TestBorderCycle(t *testing.T) {
	b := BorderSolid
	want := []Border{BorderDashed, BorderDoubleLine, BorderNone, BorderSolid, BorderDashed}
	for i, w := range want {
		b = b.Next()
		if b != w {
			t.Fatalf("step %d: Next() = %v, want %v", i, b, w)
		}
	}
}

func TestDrawBorderSolid(t *testing.T) {
	var g gridDisplay
	DrawBorder(&g, BorderSolid, true)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if got, want := g.px[y][x], onRect(x, y, 0); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	DrawBorder(&g, BorderSolid, false)
	if n := g.lit(); n != 0 {
		t.Fatalf("after erase lit = %d, want 0", n)
	}
}

// onDash reports whether x, y is one of the dashed border pixels: every 4th
// pixel of the top and bottom rows, and every 4th pixel of the side columns.
func onDash(x, y int) bool {
	row := (y == 0 || y == Height-1) && x%dashStep == 0
	col := (x == 0 || x == Width-1) && y%dashStep == 0
	return row || col
}

func TestDrawBorderDashed(t *testing.T) {
	var g gridDisplay
	DrawBorder(&g, BorderDashed, true)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if got, want := g.px[y][x], onDash(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	corners := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{Width - 1, 0, true}, // side column dash at y=0
		{0, Height - 1, true},
		{Width - 1, Height - 1, false},
	}
	for _, c := range corners {
		if got := g.px[c.y][c.x]; got != c.want {
			t.Errorf("corner (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	DrawBorder(&g, BorderDashed, false)
	if n := g.lit(); n != 0 {
		t.Fatalf("after erase lit = %d, want 0", n)
	}
}

func TestDrawBorderDoubleLine(t *testing.T) {
	var g gridDisplay
	DrawBorder(&g, BorderDoubleLine, true)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := onRect(x, y, 0) || onRect(x, y, innerInset)
			if g.px[y][x] != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g.px[y][x], want)
			}
		}
	}
}

func TestDrawBorderNoneClearsDoubleLine(t *testing.T) {
	for _, visible := range []bool{true, false} {
		var g gridDisplay
		DrawBorder(&g, BorderDoubleLine, true)
		DrawBorder(&g, BorderNone, visible)
		if n := g.lit(); n != 0 {
			t.Fatalf("visible=%v: lit = %d after none, want 0", visible, n)
		}
	}
}

func TestDrawMarker(t *testing.T) {
	var g gridDisplay
	const x0, y0 = 58, 27
	DrawMarker(&g, x0, y0, true)

	if n, want := g.lit(), 4*(MarkerSize-1); n != want {
		t.Fatalf("lit = %d, want %d", n, want)
	}
	for y := y0; y < y0+MarkerSize; y++ {
		for x := x0; x < x0+MarkerSize; x++ {
			edge := x == x0 || x == x0+MarkerSize-1 || y == y0 || y == y0+MarkerSize-1
			if g.px[y][x] != edge {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g.px[y][x], edge)
			}
		}
	}

	DrawMarker(&g, x0, y0, false)
	if n := g.lit(); n != 0 {
		t.Fatalf("after erase lit = %d, want 0", n)
	}
}

func TestSplashDrawsText(t *testing.T) {
	var g gridDisplay
	Splash(&g, "BitDogLab", "dev")

	inner := 0
	for y := 1; y < Height-1; y++ {
		for x := 1; x < Width-1; x++ {
			if g.px[y][x] {
				inner++
			}
		}
	}
	if inner == 0 {
		t.Fatal("splash wrote no text pixels")
	}
}
