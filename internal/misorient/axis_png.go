package misorient

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

var (
	bgColor     = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	sphereColor = color.NRGBA{0x80, 0x80, 0x80, 0xFF}
	gridColor   = color.NRGBA{0xD0, 0xD0, 0xD0, 0xFF}
	axisColor   = color.NRGBA{0xE0, 0x20, 0x20, 0xFF}
)

// stereographic projects a unit vector of the upper hemisphere (z >= 0)
// onto the unit disk. Vectors in the lower hemisphere are replaced by their
// antipode first; flipped reports whether that happened.
func stereographic(v Vector3) (x, y Real, flipped bool) {
	if v.Z < 0 {
		v = v.Mul(-1)
		flipped = true
	}
	return v.X / (1 + v.Z), v.Y / (1 + v.Z), flipped
}

// SaveAxisPNG writes a size×size stereographic plot of the rotation axis:
// the projected sphere outline, the x/y cube axes, and the axis marker.
// A filled marker means the axis points into the upper hemisphere, a ring
// means its antipode was plotted. The zero axis draws no marker.
func SaveAxisPNG(axis Vector3, path string, size int) error {
	if size < 16 {
		return fmt.Errorf("png size must be >= 16, got %d", size)
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = bgColor.R
		img.Pix[i+1] = bgColor.G
		img.Pix[i+2] = bgColor.B
		img.Pix[i+3] = bgColor.A
	}

	c := Real(size-1) / 2
	radius := c * 0.95
	// Map disk coordinates to pixels (flip Y so up is up).
	toPx := func(x, y Real) (int, int) {
		return int(math.Round(c + x*radius)), int(math.Round(c - y*radius))
	}

	for k := 0; k < size; k++ {
		t := Real(k)/Real(size-1)*2 - 1
		px, py := toPx(t, 0)
		img.SetNRGBA(px, py, gridColor)
		px, py = toPx(0, t)
		img.SetNRGBA(px, py, gridColor)
	}
	steps := int(2 * math.Pi * radius * 2)
	for k := 0; k < steps; k++ {
		phi := 2 * math.Pi * Real(k) / Real(steps)
		px, py := toPx(math.Cos(phi), math.Sin(phi))
		img.SetNRGBA(px, py, sphereColor)
	}

	if axis.Len() > 0 {
		x, y, flipped := stereographic(axis.Norm())
		ax, ay := toPx(x, y)
		r := Real(size) / 40
		for j := int(-r) - 1; j <= int(r)+1; j++ {
			for i := int(-r) - 1; i <= int(r)+1; i++ {
				d := math.Hypot(Real(i), Real(j))
				if d > r {
					continue
				}
				if flipped && d < r-2 {
					continue
				}
				img.SetNRGBA(ax+i, ay+j, axisColor)
			}
		}
		DebugLog("Axis %+v plotted at pixel (%d, %d), flipped=%v", axis, ax, ay, flipped)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
