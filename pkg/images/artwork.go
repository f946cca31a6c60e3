package images

import (
	"image"

	"github.com/fogleman/gg"
)

// checkerCell is the side length of one checkerboard square in pixels.
const checkerCell = 16

// Checkerboard draws the light/dark gray backdrop shown behind the viewer
// pane, sized to the requested area. Transparent regions of a displayed
// image let it show through.
func Checkerboard(w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetRGB(0.93, 0.93, 0.93)
	dc.Clear()

	dc.SetRGB(0.87, 0.87, 0.87)
	for y := 0; y*checkerCell < h; y++ {
		for x := 0; x*checkerCell < w; x++ {
			if (x+y)%2 == 1 {
				dc.DrawRectangle(float64(x*checkerCell), float64(y*checkerCell), checkerCell, checkerCell)
			}
		}
	}
	dc.Fill()
	return dc.Image()
}

// BrokenPlaceholder draws the failed-load graphic: a light gray panel with a
// gray frame and a corner-to-corner cross.
func BrokenPlaceholder(w, h int) image.Image {
	if w < 4 {
		w = 4
	}
	if h < 4 {
		h = 4
	}
	fw, fh := float64(w), float64(h)

	dc := gg.NewContext(w, h)
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.Clear()

	dc.SetRGB(0.5, 0.5, 0.5)
	dc.SetLineWidth(2)
	dc.DrawLine(0, 0, fw, fh)
	dc.DrawLine(fw, 0, 0, fh)
	dc.Stroke()
	dc.DrawRectangle(1, 1, fw-2, fh-2)
	dc.Stroke()
	return dc.Image()
}
