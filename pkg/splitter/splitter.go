// Package splitter drives the split pipeline: validate the source path,
// load the PC image and its optional SP counterpart, compute the tiling
// geometry, crop and persist the tiles, and hand the generated markup to
// the output sink.
package splitter

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/webfold/foldsplit/internal/codec"
	"github.com/webfold/foldsplit/internal/geometry"
	"github.com/webfold/foldsplit/internal/imgpath"
	"github.com/webfold/foldsplit/internal/markup"
	"github.com/webfold/foldsplit/internal/sink"
	"github.com/webfold/foldsplit/internal/utils"
	"github.com/webfold/foldsplit/internal/utils/errs"
)

type Options struct {
	// Path is the PC image to split.
	Path string
	// PCResize and SPResize scale each image independently; the zero value
	// means the default 2.0 scale.
	PCResize geometry.ResizeSpec
	SPResize geometry.ResizeSpec
	// Media is the breakpoint for the SP source in responsive markup.
	Media string
	// Output receives the generated markup. Nil means the markup is only
	// returned in the Result.
	Output sink.Sink
}

type Result struct {
	// TileCount is the number of tiles, identical for PC and SP.
	TileCount int
	// TileHeights are the PC tile pixel heights, top to bottom.
	TileHeights []int
	// Markup is the generated fragment.
	Markup string
	// SPPaired reports whether an SP counterpart was found and split.
	SPPaired bool
}

// Split runs the whole pipeline for one PC image. The first failing stage
// aborts the run; tiles written before the failure are left in place.
func Split(options *Options) (*Result, error) {
	log.Debug().Str("path", options.Path).Msg("Starting split")

	// Validate
	if !utils.FileExists(options.Path) {
		return nil, NewSourceNotFound(options.Path)
	}
	sem, err := imgpath.Resolve(options.Path)
	if err != nil {
		return nil, err
	}

	// Load
	pcImage, err := codec.DecodeFile(options.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load PC image %s: %w", options.Path, err)
	}

	var spImage image.Image
	spPath, paired := imgpath.FindCounterpart(options.Path)
	if paired {
		spImage, err = codec.DecodeFile(spPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load SP image %s: %w", spPath, err)
		}
	}

	// ComputeGeometry: the tile count always derives from the PC resized
	// height; SP boundaries are recomputed against SP's own height.
	pcBounds := pcImage.Bounds()
	pcWidth, pcHeight := geometry.ResizeDimensions(pcBounds.Dx(), pcBounds.Dy(), options.PCResize)
	log.Info().
		Int("original_width", pcBounds.Dx()).Int("original_height", pcBounds.Dy()).
		Int("width", pcWidth).Int("height", pcHeight).
		Msg("PC image resized")

	tileCount := geometry.TileCount(pcHeight)
	pcBoundaries := geometry.TileBoundaries(pcHeight, tileCount)

	// Split
	pcTiles, err := cropTiles(codec.Resize(pcImage, pcWidth, pcHeight), pcBoundaries)
	if err != nil {
		return nil, err
	}

	var spTiles []image.Image
	if paired {
		spBounds := spImage.Bounds()
		spWidth, spHeight := geometry.ResizeDimensions(spBounds.Dx(), spBounds.Dy(), options.SPResize)
		log.Info().
			Int("original_width", spBounds.Dx()).Int("original_height", spBounds.Dy()).
			Int("width", spWidth).Int("height", spHeight).
			Msg("SP image resized")

		spTiles, err = cropTiles(codec.Resize(spImage, spWidth, spHeight), geometry.TileBoundaries(spHeight, tileCount))
		if err != nil {
			return nil, err
		}
	}

	// Persist
	if err := saveTiles(pcTiles, filepath.Dir(options.Path), sem.OutputExtension, geometry.DecideTransform(codec.HasAlpha(pcImage), sem.OutputExtension)); err != nil {
		return nil, err
	}
	if paired {
		spDir := filepath.Dir(spPath)
		if err := os.MkdirAll(spDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create SP output directory %s: %w", spDir, err)
		}
		if err := saveTiles(spTiles, spDir, sem.OutputExtension, geometry.DecideTransform(codec.HasAlpha(spImage), sem.OutputExtension)); err != nil {
			return nil, err
		}
	}

	heights := lo.Map(pcTiles, func(tile image.Image, _ int) int {
		return tile.Bounds().Dy()
	})

	// GenerateMarkup
	fragment := markup.Generate(tileCount, sem, heights, options.Media)
	if options.Output != nil {
		if err := options.Output.Emit(fragment); err != nil {
			return nil, err
		}
	}

	log.Info().Int("tiles", tileCount).Bool("sp_paired", paired).Msg("Split complete")

	return &Result{
		TileCount:   tileCount,
		TileHeights: heights,
		Markup:      fragment,
		SPPaired:    paired,
	}, nil
}

func cropTiles(img image.Image, boundaries []geometry.TileBoundary) ([]image.Image, error) {
	tiles := make([]image.Image, len(boundaries))
	for i, boundary := range boundaries {
		tile, err := codec.Crop(img, boundary)
		if err != nil {
			return nil, err
		}
		tiles[i] = tile
	}
	return tiles, nil
}

// saveTiles writes the tiles as 1-based sequential files next to the source.
func saveTiles(tiles []image.Image, dir string, ext imgpath.OutputExtension, transform geometry.Transform) error {
	for i, tile := range tiles {
		path := filepath.Join(dir, fmt.Sprintf("%d.%s", i+1, ext))
		if err := writeTile(path, tile, ext, transform); err != nil {
			return fmt.Errorf("failed to save tile %d: %w", i+1, err)
		}
		log.Debug().Str("path", path).Int("height", tile.Bounds().Dy()).Msg("Tile written")
	}
	return nil
}

func writeTile(path string, tile image.Image, ext imgpath.OutputExtension, transform geometry.Transform) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer errs.Capture(&err, f.Close, "failed to close tile file")

	return codec.Encode(f, tile, ext, transform)
}
