// Package geometry holds the pure tiling math: resize scaling, tile count
// and boundary computation, and the encoding transform decision. No I/O.
package geometry

import "github.com/webfold/foldsplit/internal/imgpath"

const (
	// DefaultScale is applied when neither a target width nor an explicit
	// scale is configured. Sources are expected at 2x pixel density.
	DefaultScale = 2.0
	// nominalTileHeight is the target tile height in resized pixels.
	nominalTileHeight = 200
	// overlapPixels is the row overlap shared by consecutive tiles so that
	// viewport rounding never exposes a seam.
	overlapPixels = 10
)

// ResizeSpec selects how an image is scaled: to an absolute target width or
// by a uniform factor. At most one is set; the zero value means the default
// 2.0 scale. Scaling is always uniform, there is no independent vertical
// scale.
type ResizeSpec struct {
	targetWidth int
	scale       float64
}

// ByWidth builds a spec that scales the image to the given pixel width.
func ByWidth(targetWidth int) ResizeSpec {
	return ResizeSpec{targetWidth: targetWidth}
}

// ByScale builds a spec that scales the image by the given factor.
func ByScale(scale float64) ResizeSpec {
	return ResizeSpec{scale: scale}
}

// Factor resolves the uniform scale factor for an image of the given width.
func (s ResizeSpec) Factor(currentWidth int) float64 {
	if s.targetWidth > 0 {
		return float64(s.targetWidth) / float64(currentWidth)
	}
	if s.scale > 0 {
		return s.scale
	}
	return DefaultScale
}

// ResizeDimensions computes the resized dimensions for an image, truncating
// both axes after applying the uniform scale factor.
func ResizeDimensions(currentWidth, currentHeight int, spec ResizeSpec) (int, int) {
	factor := spec.Factor(currentWidth)
	return int(float64(currentWidth) * factor), int(float64(currentHeight) * factor)
}

// TileCount derives the number of tiles from the resized height. Short
// images still yield a single tile.
func TileCount(resizedHeight int) int {
	if count := resizedHeight / nominalTileHeight; count > 1 {
		return count
	}
	return 1
}

// TileBoundary is one horizontal slice of a resized image, in pixel rows.
type TileBoundary struct {
	Top    int
	Bottom int
}

// Height is the pixel height of the slice.
func (b TileBoundary) Height() int {
	return b.Bottom - b.Top
}

// TileBoundaries partitions [0, resizedHeight] into tileCount slices. Every
// tile but the first has its top edge pulled up by the overlap, and the last
// tile extends to the true bottom to absorb the integer division remainder.
func TileBoundaries(resizedHeight, tileCount int) []TileBoundary {
	baseHeight := resizedHeight / tileCount
	boundaries := make([]TileBoundary, tileCount)

	for i := range boundaries {
		top := i * baseHeight
		if i > 0 {
			top -= overlapPixels
		}
		bottom := (i + 1) * baseHeight
		if i == tileCount-1 {
			bottom = resizedHeight
		}
		boundaries[i] = TileBoundary{Top: top, Bottom: bottom}
	}

	return boundaries
}

// Transform is the normalization applied to a tile before encoding.
type Transform int

const (
	// PassThrough encodes the tile unchanged.
	PassThrough Transform = iota
	// FlattenWhite composites the tile onto an opaque white background.
	// JPEG has no alpha channel, so alpha-bearing tiles destined for jpg
	// must be flattened first.
	FlattenWhite
)

// DecideTransform picks the encoding transform for a tile.
func DecideTransform(sourceHasAlpha bool, ext imgpath.OutputExtension) Transform {
	if ext == imgpath.ExtJPG && sourceHasAlpha {
		return FlattenWhite
	}
	return PassThrough
}
