package blinky

import "image/color"

// fakeStrip records frames for assertions.
type fakeStrip struct {
	pixels  [NumPixels]color.RGBA
	commits int
}

func (f *fakeStrip) SetPixel(i int, c color.RGBA) {
	if i >= 0 && i < NumPixels {
		f.pixels[i] = c
	}
}

func (f *fakeStrip) Clear() {
	f.pixels = [NumPixels]color.RGBA{}
}

func (f *fakeStrip) Commit() error {
	f.commits++
	return nil
}

// lit returns the indices of all non-black pixels.
func (f *fakeStrip) lit() []int {
	var out []int
	for i, c := range f.pixels {
		if c.R != 0 || c.G != 0 || c.B != 0 {
			out = append(out, i)
		}
	}
	return out
}

// litIn returns the lit ring-relative cells for prop p.
func (f *fakeStrip) litIn(p int) []int {
	var out []int
	for cell := 0; cell < PropRingSize; cell++ {
		c := f.pixels[p*PropRingSize+cell]
		if c.R != 0 || c.G != 0 || c.B != 0 {
			out = append(out, cell)
		}
	}
	return out
}

// fakeNav records the last requested mode.
type fakeNav struct {
	mode NavMode
	sets int
}

func (f *fakeNav) SetMode(m NavMode) {
	f.mode = m
	f.sets++
}
