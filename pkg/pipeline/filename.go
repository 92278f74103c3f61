package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/framefit/pkg/ports"
)

// DeriveFilename builds the output filename for a processed image. The
// original extension is stripped, the target size and preset label (with
// spaces removed) are appended, and the format's canonical extension is
// used. Deterministic: no randomness, no timestamps.
//
// Example: ("photo.png", 1920x1080, "1080p FHD", JPEG) -> "photo_1920x1080_1080pFHD.jpg".
func DeriveFilename(original string, target Dimension, label string, format ports.ImageFormat) string {
	base := filepath.Base(original)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "image"
	}
	suffix := strings.ReplaceAll(label, " ", "")
	return fmt.Sprintf("%s_%dx%d_%s.%s", base, target.Width, target.Height, suffix, format.Extension())
}
