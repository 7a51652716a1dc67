package cpu

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

const (
	ScreenWidth  = 512
	ScreenHeight = 256
	wordsPerRow  = ScreenWidth / 16
)

// Pixel reports whether the pixel at (x, y) is set. Bit 0 of a word is its
// leftmost pixel.
func (c *CPU) Pixel(x, y int) bool {
	word := c.RAM[int(ScreenBase)+y*wordsPerRow+x/16]
	return word&(1<<(x%16)) != 0
}

// GetFramebufferRGBA decodes the screen into a 512×256 RGBA8888 byte slice:
// set pixels are black, clear pixels white.
func (c *CPU) GetFramebufferRGBA() []byte {
	pixels := make([]byte, ScreenWidth*ScreenHeight*4)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			var v byte = 0xFF
			if c.Pixel(x, y) {
				v = 0x00
			}
			i := (y*ScreenWidth + x) * 4
			pixels[i+0] = v
			pixels[i+1] = v
			pixels[i+2] = v
			pixels[i+3] = 0xFF
		}
	}
	return pixels
}

// GetFramebufferImage returns the screen as a grayscale image.
func (c *CPU) GetFramebufferImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if c.Pixel(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0x00})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return img
}

// SaveScreenshot encodes the screen as a PNG and writes it to filename.
func (c *CPU) SaveScreenshot(filename string) error {
	img := c.GetFramebufferImage()
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
