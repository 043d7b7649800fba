package generator

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/zerr"

	"github.com/hullworks/keel/internal/core/domain"
)

// Markers the synthesizer is known to emit. The drift check is a cheap
// consistency heuristic for manual edits or deletions of the descriptor
// after a fingerprint was recorded; a full content hash of the tree is
// deliberately out of scope.
const (
	markerAssetScript = "SRCROOT/../dist"
	markerIOS         = `SUPPORTED_PLATFORMS = "iphoneos`
	markerMacOS       = "SUPPORTED_PLATFORMS = macosx"
)

// descriptorMatches reports whether the descriptor on disk still looks like
// something this engine generated for the given configuration. A missing
// descriptor is drift, not an error.
func descriptorMatches(path string, root *domain.RootConfig) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, "reading existing project descriptor")
	}
	text := string(data)

	if !strings.Contains(text, markerAssetScript) {
		return false, nil
	}
	if root.HasPlatform(domain.PlatformIOS) && !strings.Contains(text, markerIOS) {
		return false, nil
	}
	if root.HasPlatform(domain.PlatformMacOS) != strings.Contains(text, markerMacOS) {
		return false, nil
	}
	return true, nil
}
