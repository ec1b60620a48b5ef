// Package codec wraps the image decode, resize, crop and encode steps used
// by the splitter. PNG, JPEG, GIF and WebP sources decode; tiles encode to
// PNG (lossless) or JPEG (lossy, RGB only).
package codec

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/oliamb/cutter"
	_ "golang.org/x/image/webp"

	"github.com/webfold/foldsplit/internal/geometry"
	"github.com/webfold/foldsplit/internal/imgpath"
	"github.com/webfold/foldsplit/internal/utils/errs"
)

// jpegQuality matches the default web-export quality; compression tuning is
// out of scope.
const jpegQuality = 85

// Decode reads an image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, NewDecodeError(err)
	}
	return img, nil
}

// DecodeFile opens and decodes an image file. The file handle is released
// before returning, on every path.
func DecodeFile(path string) (img image.Image, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDecodeError(err)
	}
	defer errs.Capture(&err, f.Close, "failed to close image file")

	return Decode(f)
}

// Resize scales an image to the given dimensions with a Lanczos filter.
func Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Crop cuts the full-width slice described by the boundary out of the image.
func Crop(img image.Image, boundary geometry.TileBoundary) (image.Image, error) {
	part, err := cutter.Crop(img, cutter.Config{
		Width:  img.Bounds().Dx(),
		Height: boundary.Height(),
		Anchor: image.Point{Y: boundary.Top},
		Mode:   cutter.TopLeft,
	})
	if err != nil {
		return nil, fmt.Errorf("error cropping rows %d-%d: %w", boundary.Top, boundary.Bottom, err)
	}
	return part, nil
}

// Encode writes a tile in the given format, applying the transform first.
func Encode(w io.Writer, img image.Image, ext imgpath.OutputExtension, transform geometry.Transform) error {
	if transform == geometry.FlattenWhite {
		img = FlattenWhite(img)
	}

	var err error
	switch ext {
	case imgpath.ExtPNG:
		err = png.Encode(w, img)
	default:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return NewEncodeError(err)
	}
	return nil
}

// FlattenWhite composites an alpha-bearing image onto an opaque white
// background.
func FlattenWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

// HasAlpha reports whether the decoded image can carry transparency.
// JPEG sources decode to YCbCr and never do.
func HasAlpha(img image.Image) bool {
	if opaquer, ok := img.(interface{ Opaque() bool }); ok {
		return !opaquer.Opaque()
	}
	switch img.ColorModel() {
	case color.YCbCrModel, color.GrayModel, color.Gray16Model, color.CMYKModel:
		return false
	}
	return true
}
