package imgpath

import (
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/webfold/foldsplit/internal/utils"
)

// FindCounterpart locates the SP (mobile) counterpart of a PC image by
// swapping the pc directory segment for sp. When the candidate does not
// exist and the PC image is a .jpg, a .png sibling is probed as well.
// A path without a pc segment has no counterpart; that is not an error.
func FindCounterpart(pcPath string) (string, bool) {
	segments := strings.Split(filepath.ToSlash(pcPath), "/")
	dirs := segments[:len(segments)-1]

	pcIdx := slices.Index(dirs, "pc")
	if pcIdx < 0 {
		return "", false
	}

	candidate := slices.Clone(segments)
	candidate[pcIdx] = "sp"
	spPath := strings.Join(candidate, "/")

	if utils.FileExists(spPath) {
		return spPath, true
	}

	if strings.EqualFold(filepath.Ext(spPath), ".jpg") {
		spPath = strings.TrimSuffix(spPath, filepath.Ext(spPath)) + ".png"
		if utils.FileExists(spPath) {
			return spPath, true
		}
	}

	return "", false
}
