package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// logoDrawWidth is the on-screen width of the logo in pixels; the source
// image is scaled to fit it.
const logoDrawWidth = 240.0

// Logo is the loaded, tint-ready logo texture and its draw geometry.
type Logo struct {
	Image  *ebiten.Image
	Scale  float64
	Width  float64
	Height float64
}

// LoadLogo reads the bundled PNG and prepares it for tinting: every visible
// pixel is lifted to white (alpha preserved) so multiplying by a palette
// color yields that color exactly.
func LoadLogo(path string) (*Logo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(whiten(src))
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	scale := logoDrawWidth / w

	return &Logo{
		Image:  img,
		Scale:  scale,
		Width:  w * scale,
		Height: h * scale,
	}, nil
}

func whiten(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			if a > 0 {
				dst.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a >> 8)})
			}
		}
	}
	return dst
}
