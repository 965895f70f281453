package blob

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// ThumbWidth is the feed thumbnail width in pixels.
const ThumbWidth = 512

// Thumbnail re-encodes the image as a JPEG no wider than width, keeping
// the aspect ratio. Images already narrow enough are only re-encoded.
func Thumbnail(data []byte, width uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("blob: decode thumbnail source: %w", err)
	}
	if uint(img.Bounds().Dx()) > width {
		img = resize.Resize(width, 0, img, resize.Lanczos3)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("blob: encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
