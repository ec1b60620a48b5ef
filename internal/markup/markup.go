// Package markup renders the HTML fragment that references the persisted
// tiles, either as plain <img> elements or as media-switched <picture>
// elements when a pc/sp pair exists.
package markup

import (
	"fmt"
	"strings"

	"github.com/webfold/foldsplit/internal/imgpath"
)

// DefaultMedia is the breakpoint under which the SP source is served.
const DefaultMedia = "(max-width: 750px)"

// Generate builds the markup fragment for tileCount tiles. heights are the
// actual PC tile pixel heights, in top-to-bottom order; the emitted elements
// follow the same order. Identical inputs always produce identical output.
func Generate(tileCount int, sem *imgpath.Semantics, heights []int, media string) string {
	if media == "" {
		media = DefaultMedia
	}

	tags := make([]string, 0, tileCount+2)
	if sem.WrapperClass != "" {
		tags = append(tags, fmt.Sprintf(`<div class="%s">`, sem.WrapperClass))
	}

	for i := 1; i <= tileCount; i++ {
		if sem.IsResponsive {
			tags = append(tags, responsiveTag(sem, i, heights[i-1], media))
		} else {
			tags = append(tags, simpleTag(sem, i, heights[i-1]))
		}
	}

	if sem.WrapperClass != "" {
		tags = append(tags, "</div>")
	}

	return strings.Join(tags, "\n")
}

func responsiveTag(sem *imgpath.Semantics, index, height int, media string) string {
	spSrc := tileSrc(sem.RelativeBasePath, "sp", sem.SubDirectory, index, sem.OutputExtension)
	pcSrc := tileSrc(sem.RelativeBasePath, "pc", sem.SubDirectory, index, sem.OutputExtension)

	return fmt.Sprintf(`<picture style="--h: %s;">
  <source srcset="%s" media="%s" />
  <img src="%s" alt="" />
</picture>`, halfHeight(height), spSrc, media, pcSrc)
}

func simpleTag(sem *imgpath.Semantics, index, height int) string {
	src := tileSrc(sem.RelativeBasePath, "", sem.SubDirectory, index, sem.OutputExtension)
	return fmt.Sprintf(`<img src="%s" style="--h: %s;" alt="" />`, src, halfHeight(height))
}

// tileSrc joins the path pieces, skipping empty segments so an image that
// sits directly under images/ does not produce a double slash.
func tileSrc(base, branch, subDir string, index int, ext imgpath.OutputExtension) string {
	parts := make([]string, 0, 4)
	parts = append(parts, base)
	if branch != "" {
		parts = append(parts, branch)
	}
	if subDir != "" {
		parts = append(parts, subDir)
	}
	parts = append(parts, fmt.Sprintf("%d.%s", index, ext))
	return strings.Join(parts, "/")
}

// halfHeight renders the display hint. Tiles are cut from a 2x density
// source, so the CSS variable carries half the pixel height; the rendering
// keeps one decimal to stay byte-compatible with existing stylesheets.
func halfHeight(height int) string {
	return fmt.Sprintf("%.1f", float64(height)/2)
}
