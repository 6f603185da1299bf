package platform

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad_PNGKeepsUnmultipliedAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	path := writePNG(t, t.TempDir(), "alpha.png", src)

	buf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if buf.Width != 4 || buf.Height != 2 {
		t.Errorf("Expected 4x2, got %dx%d", buf.Width, buf.Height)
	}

	got := buf.Image.NRGBAAt(1, 1)
	expected := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	if got != expected {
		t.Errorf("Pixel (1,1) = %+v, expected %+v", got, expected)
	}

	if len(buf.Image.Pix) != 4*2*4 {
		t.Errorf("Expected %d bytes of pixel data, got %d", 4*2*4, len(buf.Image.Pix))
	}
}

func TestLoad_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	var data bytes.Buffer
	if err := jpeg.Encode(&data, src, nil); err != nil {
		t.Fatalf("Failed to encode jpeg: %v", err)
	}
	path := filepath.Join(t.TempDir(), "shot.jpg")
	if err := os.WriteFile(path, data.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write jpeg: %v", err)
	}

	buf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if buf.Width != 16 || buf.Height != 8 {
		t.Errorf("Expected 16x8, got %dx%d", buf.Width, buf.Height)
	}
	if a := buf.Image.NRGBAAt(3, 3).A; a != 0xff {
		t.Errorf("Expected opaque pixel, got alpha %d", a)
	}
}

func TestLoad_OffsetBoundsAreNormalized(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	src.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	buf, err := toPixelBuffer("mem", src)
	if err != nil {
		t.Fatalf("toPixelBuffer() returned error: %v", err)
	}

	if buf.Image.Bounds().Min != (image.Point{}) {
		t.Errorf("Expected origin-anchored bounds, got %v", buf.Image.Bounds())
	}
	if got := buf.Image.NRGBAAt(0, 0); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Pixel (0,0) = %+v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(garbage, []byte("this is not an image"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	valid := writePNG(t, dir, "valid.png", image.NewNRGBA(image.Rect(0, 0, 32, 32)))
	data, err := os.ReadFile(valid)
	if err != nil {
		t.Fatalf("Failed to read png: %v", err)
	}
	truncated := filepath.Join(dir, "truncated.png")
	if err := os.WriteFile(truncated, data[:40], 0644); err != nil {
		t.Fatalf("Failed to write truncated png: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		sentinel error
		kind     DecodeErrorKind
	}{
		{"missing file", filepath.Join(dir, "missing.png"), ErrUnreadable, DecodeUnreadable},
		{"unknown format", garbage, ErrUnsupportedFormat, DecodeUnsupported},
		{"truncated png", truncated, ErrCorrupt, DecodeCorrupt},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf, err := Load(test.path)
			if buf != nil {
				t.Errorf("Load() returned a buffer on failure")
			}
			if !errors.Is(err, test.sentinel) {
				t.Fatalf("Load() error = %v, expected %v", err, test.sentinel)
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Load() error is %T, expected *DecodeError", err)
			}
			if decodeErr.Kind != test.kind || decodeErr.Path != test.path {
				t.Errorf("DecodeError = %+v", decodeErr)
			}
		})
	}
}
