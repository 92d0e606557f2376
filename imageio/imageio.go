// Package imageio converts between images and binary grids and names the
// files written by batch synthesis.
//
// A pixel maps to true when its luma is non-zero, so any non-black pixel of
// an exemplar counts as foreground. Fields are written as 8-bit grayscale
// PNG, white for true and black for false. PNG, GIF, JPEG and BMP exemplars
// are accepted.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF exemplars
	_ "image/jpeg" // register JPEG exemplars
	"image/png"
	"io"
	"os"
	"strconv"

	_ "golang.org/x/image/bmp" // register BMP exemplars

	"github.com/katalvlaran/convchain/grid"
	"github.com/katalvlaran/convchain/samples"
)

// ErrNilGrid indicates an attempt to encode a nil grid.
var ErrNilGrid = errors.New("imageio: grid is nil")

// Load decodes the image file at path into a grid.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode reads any registered image format from r and thresholds it.
func Decode(r io.Reader) (*grid.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	return ToGrid(img)
}

// ToGrid thresholds img: a pixel is true when its gray value is > 0.
func ToGrid(img image.Image) (*grid.Grid, error) {
	b := img.Bounds()
	g, err := grid.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	cells := g.Cells()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			cells[(y-b.Min.Y)*g.Width+(x-b.Min.X)] = c.Y > 0
		}
	}

	return g, nil
}

// ToImage renders g as grayscale: true is white (255), false is black (0).
func ToImage(g *grid.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for i, c := range g.Cells() {
		if c {
			img.Pix[i] = 0xff
		}
	}

	return img
}

// Encode writes g to w as PNG.
func Encode(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}

	return png.Encode(w, ToImage(g))
}

// Save writes g as a PNG file at path.
func Save(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}

	return f.Close()
}

// ExemplarName returns the file name of a sample's exemplar image.
func ExemplarName(name string) string { return name + ".png" }

// OutputName returns the file name of screenshot k of a sample processed
// in the given pass (1-based): "<pass> <name> t=<T> i=<iterations> <k>.png".
func OutputName(pass int, s samples.Sample, k int) string {
	return fmt.Sprintf("%d %s t=%s i=%d %d.png",
		pass, s.Name, strconv.FormatFloat(s.Temperature, 'g', -1, 64), s.Iterations, k)
}
