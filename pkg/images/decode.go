// Package images turns fetched bytes into pixels and draws the viewer's
// built-in artwork: the checkerboard backdrop and the broken-image
// placeholder.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/dustin/go-humanize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a successfully decoded image.
type Info struct {
	Format string // upper-cased registered format name, e.g. "PNG"
	Width  int
	Height int
	Bytes  int // encoded size, not pixel size
}

// Decode decodes image bytes using whichever registered codec matches the
// content: PNG, JPEG, GIF, WebP, BMP or TIFF. Any declared Content-Type is
// ignored; the codec is chosen by sniffing the bytes.
func Decode(data []byte) (image.Image, Info, error) {
	if len(data) == 0 {
		return nil, Info{}, fmt.Errorf("decoding image: empty body")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Info{}, fmt.Errorf("decoding image: %w", err)
	}
	bounds := img.Bounds()
	info := Info{
		Format: strings.ToUpper(format),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Bytes:  len(data),
	}
	return img, info, nil
}

// Describe renders an Info as the one-line summary shown in the status bar,
// e.g. "800×600 PNG, 1.2 MB".
func (i Info) Describe() string {
	return fmt.Sprintf("%d×%d %s, %s", i.Width, i.Height, i.Format, humanize.Bytes(uint64(i.Bytes)))
}
