package images

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// testImage returns a small solid red RGBA image.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, red)
		}
	}
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(2, 3)); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	img, info, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 3 {
		t.Errorf("expected 2x3, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if info.Format != "PNG" {
		t.Errorf("expected format PNG, got %q", info.Format)
	}
	if info.Width != 2 || info.Height != 3 {
		t.Errorf("info dimensions %dx%d", info.Width, info.Height)
	}
	if info.Bytes != buf.Len() {
		t.Errorf("info bytes %d, want %d", info.Bytes, buf.Len())
	}
}

func TestDecodeOtherFormats(t *testing.T) {
	encode := map[string]func(*bytes.Buffer) error{
		"GIF": func(buf *bytes.Buffer) error {
			return gif.Encode(buf, testImage(4, 4), nil)
		},
		"JPEG": func(buf *bytes.Buffer) error {
			return jpeg.Encode(buf, testImage(4, 4), nil)
		},
		"BMP": func(buf *bytes.Buffer) error {
			return bmp.Encode(buf, testImage(4, 4))
		},
		"TIFF": func(buf *bytes.Buffer) error {
			return tiff.Encode(buf, testImage(4, 4), nil)
		},
	}
	for format, enc := range encode {
		var buf bytes.Buffer
		if err := enc(&buf); err != nil {
			t.Fatalf("%s: encoding fixture: %v", format, err)
		}
		_, info, err := Decode(buf.Bytes())
		if err != nil {
			t.Errorf("%s: unexpected error: %v", format, err)
			continue
		}
		if info.Format != format {
			t.Errorf("expected format %s, got %q", format, info.Format)
		}
		if info.Width != 4 || info.Height != 4 {
			t.Errorf("%s: dimensions %dx%d", format, info.Width, info.Height)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := [][]byte{
		nil,
		{},
		[]byte("this is not an image"),
		[]byte("\x89PNG\r\n\x1a\ntruncated-garbage"),
	}
	for _, data := range tests {
		if _, _, err := Decode(data); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}

func TestInfoDescribe(t *testing.T) {
	info := Info{Format: "PNG", Width: 800, Height: 600, Bytes: 1200000}
	if got := info.Describe(); got != "800×600 PNG, 1.2 MB" {
		t.Errorf("got %q", got)
	}

	small := Info{Format: "GIF", Width: 2, Height: 2, Bytes: 43}
	if got := small.Describe(); got != "2×2 GIF, 43 B" {
		t.Errorf("got %q", got)
	}
}
