package imgpath

import (
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// OutputExtension is the extension tiles are written with. Anything that is
// not a PNG source is coerced to jpg.
type OutputExtension string

const (
	ExtPNG OutputExtension = "png"
	ExtJPG OutputExtension = "jpg"
)

// Semantics is the decomposition of a PC image path against the
// images/pc/sp folder convention. It is computed once per path and never
// mutated afterwards.
type Semantics struct {
	// WrapperClass is the class name for the container element, empty when
	// the path carries no class segment.
	WrapperClass string
	// IsFirstView marks above-the-fold imagery (an fv or FV segment).
	IsFirstView bool
	// IsResponsive is set when the image lives under a pc branch and markup
	// must reference both pc/ and sp/ trees.
	IsResponsive bool
	// RelativeBasePath is the markup path prefix, rooted at the images
	// segment (e.g. "./images/widget").
	RelativeBasePath string
	// SubDirectory is the path between pc (or images) and the file itself.
	SubDirectory string
	// OutputExtension is the extension the tiles will be encoded with.
	OutputExtension OutputExtension
}

// Resolve decomposes a PC image path into its markup semantics.
// The path must contain a directory segment named "images".
func Resolve(path string) (*Semantics, error) {
	segments := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	if len(segments) < 2 {
		return nil, NewInvalidPath(path)
	}
	dirs := segments[:len(segments)-1]

	imagesIdx := slices.Index(dirs, "images")
	if imagesIdx < 0 {
		return nil, NewInvalidPath(path)
	}

	sem := &Semantics{
		OutputExtension: resolveExtension(path),
	}

	for _, dir := range dirs {
		if dir == "fv" || dir == "FV" {
			sem.IsFirstView = true
			break
		}
	}

	pcIdx := slices.Index(dirs[imagesIdx:], "pc")
	if pcIdx > 0 {
		pcIdx += imagesIdx
		sem.IsResponsive = true
		sem.RelativeBasePath = "./" + strings.Join(dirs[imagesIdx:pcIdx], "/")
		sem.SubDirectory = strings.Join(dirs[pcIdx+1:], "/")
	} else {
		sem.RelativeBasePath = "./" + dirs[imagesIdx]
		sem.SubDirectory = strings.Join(dirs[imagesIdx+1:], "/")
	}

	if next := imagesIdx + 1; next < len(dirs) {
		if dirs[next] != "pc" {
			sem.WrapperClass = dirs[next]
		} else if next+1 < len(dirs) {
			sem.WrapperClass = dirs[next+1]
		}
	}

	return sem, nil
}

// resolveExtension keeps PNG sources as png and coerces everything else,
// including webp and jpeg variants, to jpg.
func resolveExtension(path string) OutputExtension {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return ExtPNG
	}
	return ExtJPG
}
