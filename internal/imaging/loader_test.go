package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// createInMemoryImage creates a uniformly filled test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare base64", "iVBORw0KGgo=", "iVBORw0KGgo="},
		{"png data uri", "data:image/png;base64,iVBORw0KGgo=", "iVBORw0KGgo="},
		{"jpeg data uri", "data:image/jpeg;base64,/9j/4AAQ", "/9j/4AAQ"},
		{"only first comma splits", "a,b,c", "b,c"},
		{"trailing comma", "data:image/png;base64,", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPayload(tt.in); got != tt.want {
				t.Errorf("ExtractPayload(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeBase64(t *testing.T) {
	raw := []byte("hello, pixels")
	padded := base64.StdEncoding.EncodeToString(raw)
	unpadded := base64.RawStdEncoding.EncodeToString(raw)
	wrapped := padded[:8] + "\n" + padded[8:12] + " \r\n" + padded[12:]

	for name, in := range map[string]string{
		"padded":   padded,
		"unpadded": unpadded,
		"wrapped":  wrapped,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeBase64(in)
			if err != nil {
				t.Fatalf("DecodeBase64 failed: %v", err)
			}
			if !bytes.Equal(got, raw) {
				t.Errorf("got %q, want %q", got, raw)
			}
		})
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"illegal characters", "not*base64!"},
		{"padding in the middle", "aGVs=bG8="},
		{"truncated quantum", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBase64(tt.in); err == nil {
				t.Errorf("DecodeBase64(%q) should fail", tt.in)
			}
		})
	}
}

func TestDecodeBase64_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "=="} {
		if _, err := DecodeBase64(in); !errors.Is(err, ErrEmptyPayload) {
			t.Errorf("DecodeBase64(%q): got %v, want ErrEmptyPayload", in, err)
		}
	}
}

func TestDecode_PNG(t *testing.T) {
	data := encodePNG(t, createPatternImage(20, 10))

	img, err := Decode(data, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width() != 20 || img.Height() != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", img.Width(), img.Height())
	}
	if img.Format != "png" {
		t.Errorf("format: got %q, want png", img.Format)
	}
	if got := img.At(0, 0); got != (RGBColor{255, 0, 0}) {
		t.Errorf("top-left: got %+v, want red", got)
	}
	if got := img.At(19, 9); got != (RGBColor{255, 255, 255}) {
		t.Errorf("bottom-right: got %+v, want white", got)
	}
}

func TestDecode_Formats(t *testing.T) {
	src := createInMemoryImage(8, 8, color.RGBA{0, 0, 255, 255})
	// GIF needs an exact palette or the encoder dithers
	paletted := image.NewPaletted(src.Bounds(), color.Palette{color.RGBA{0, 0, 255, 255}})

	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"gif":  func(b *bytes.Buffer) error { return gif.Encode(b, paletted, nil) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
	}

	for format, encode := range encoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("failed to encode %s: %v", format, err)
			}

			img, err := Decode(buf.Bytes(), DecodeOptions{})
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Format != format {
				t.Errorf("format: got %q, want %q", img.Format, format)
			}
			if got := img.At(4, 4); got != (RGBColor{0, 0, 255}) {
				t.Errorf("pixel: got %+v, want blue", got)
			}
		})
	}
}

func TestDecode_JPEG(t *testing.T) {
	var buf bytes.Buffer
	src := createInMemoryImage(16, 16, color.RGBA{200, 40, 40, 255})
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}

	img, err := Decode(buf.Bytes(), DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// JPEG is lossy; allow small drift per channel
	got := img.At(8, 8)
	if absDiff(got.R, 200) > 8 || absDiff(got.G, 40) > 8 || absDiff(got.B, 40) > 8 {
		t.Errorf("pixel: got %+v, want about (200,40,40)", got)
	}
}

func TestDecode_NormalizesColorModels(t *testing.T) {
	t.Run("alpha is dropped without blending", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 128})
		src.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 0})

		img, err := Decode(encodePNG(t, src), DecodeOptions{})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got := img.At(0, 0); got != (RGBColor{255, 0, 0}) {
			t.Errorf("semi-transparent: got %+v, want (255,0,0)", got)
		}
	})

	t.Run("grayscale expands to equal channels", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 3, 3))
		src.SetGray(1, 1, color.Gray{Y: 77})

		img, err := Decode(encodePNG(t, src), DecodeOptions{})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got := img.At(1, 1); got != (RGBColor{77, 77, 77}) {
			t.Errorf("gray: got %+v, want (77,77,77)", got)
		}
	})

	t.Run("16-bit scales to 8-bit", func(t *testing.T) {
		src := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
		src.SetNRGBA64(0, 0, color.NRGBA64{0xFFFF, 0x8080, 0x0000, 0xFFFF})

		img, err := Decode(encodePNG(t, src), DecodeOptions{})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got := img.At(0, 0); got != (RGBColor{255, 128, 0}) {
			t.Errorf("16-bit: got %+v, want (255,128,0)", got)
		}
	})

	t.Run("paletted", func(t *testing.T) {
		pal := color.Palette{color.RGBA{0, 0, 0, 255}, color.RGBA{12, 200, 99, 255}}
		src := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
		src.SetColorIndex(1, 0, 1)

		img, err := Decode(encodePNG(t, src), DecodeOptions{})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got := img.At(1, 0); got != (RGBColor{12, 200, 99}) {
			t.Errorf("paletted: got %+v, want (12,200,99)", got)
		}
	})
}

func TestDecode_Invalid(t *testing.T) {
	valid := encodePNG(t, createInMemoryImage(4, 4, color.White))

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("not an image")},
		{"truncated png", valid[:len(valid)/2]},
		{"png signature only", valid[:8]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data, DecodeOptions{}); err == nil {
				t.Error("Decode should fail for invalid image data")
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	if _, err := Decode(nil, DecodeOptions{}); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("got %v, want ErrEmptyPayload", err)
	}
}

func TestDecode_PixelLimit(t *testing.T) {
	data := encodePNG(t, createInMemoryImage(10, 10, color.Black))

	if _, err := Decode(data, DecodeOptions{MaxPixels: 99}); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("got %v, want ErrImageTooLarge", err)
	}
	if _, err := Decode(data, DecodeOptions{MaxPixels: 100}); err != nil {
		t.Errorf("image at exactly the limit should decode: %v", err)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.Set(5, 5, color.RGBA{1, 2, 3, 255})

	img, err := FromImage(src, "test")
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 2x2", img.Width(), img.Height())
	}
	if got := img.At(0, 0); got != (RGBColor{1, 2, 3}) {
		t.Errorf("origin pixel: got %+v, want (1,2,3)", got)
	}
}

func TestFromImage_Empty(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 0, 5))
	if _, err := FromImage(src, "test"); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("got %v, want ErrEmptyImage", err)
	}
}

func TestDecode_RoundTripThroughDataURI(t *testing.T) {
	data := encodePNG(t, createPatternImage(4, 4))
	b64 := base64.StdEncoding.EncodeToString(data)

	for _, in := range []string{b64, "data:image/png;base64," + b64} {
		raw, err := DecodeBase64(ExtractPayload(in))
		if err != nil {
			t.Fatalf("DecodeBase64 failed for %q...: %v", in[:min(len(in), 24)], err)
		}
		img, err := Decode(raw, DecodeOptions{})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got := img.At(3, 0); got != (RGBColor{0, 255, 0}) {
			t.Errorf("top-right: got %+v, want green", got)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
