package qrcode

import (
	"image"
	"image/color"
)

// rasterize draws the module matrix centered on a square canvas. Each module
// is an integer number of pixels; leftover pixels are split evenly around the
// quiet zone.
func rasterize(bitmap [][]bool, margin, width int, fg, bg color.Color) *image.Paletted {
	total := len(bitmap) + 2*margin
	if width < total {
		width = total
	}
	scale := width / total
	offset := (width-scale*total)/2 + margin*scale

	// Index 0 (the zero value of every pixel) is the background.
	img := image.NewPaletted(image.Rect(0, 0, width, width), color.Palette{bg, fg})

	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0, y0 := offset+x*scale, offset+y*scale
			for dy := range scale {
				for dx := range scale {
					img.SetColorIndex(x0+dx, y0+dy, 1)
				}
			}
		}
	}

	return img
}
