package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// CompactThreshold is the decoded size above which uploads get the compact preset.
const CompactThreshold = 1536 * 1024

// MaxDecodePixels caps the images CompressImage will decode. Larger images
// are forwarded unchanged.
const MaxDecodePixels = 40_000_000

type ImagePreset struct {
	Name    string
	MaxEdge int
	Quality int
}

var (
	StandardPreset = ImagePreset{Name: "standard", MaxEdge: 1600, Quality: 85}
	CompactPreset  = ImagePreset{Name: "compact", MaxEdge: 1280, Quality: 70}
)

func PresetFor(size int) ImagePreset {
	if size > CompactThreshold {
		return CompactPreset
	}
	return StandardPreset
}

// DecodeBase64Image accepts raw base64 or a data URL.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)
	mimeType := ""
	if strings.HasPrefix(encoded, "data:") {
		comma := strings.Index(encoded, ",")
		if comma < 0 {
			return nil, "", fmt.Errorf("%w: malformed data url", ErrInvalidInput)
		}
		meta := strings.TrimPrefix(encoded[:comma], "data:")
		mimeType, _, _ = strings.Cut(meta, ";")
		encoded = encoded[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(encoded); err != nil {
			return nil, "", fmt.Errorf("%w: image is not valid base64", ErrInvalidInput)
		}
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: image is empty", ErrInvalidInput)
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}

// CompressImage scales the image down to the preset's longest edge and
// re-encodes it as JPEG. Undecodable or oversized input is returned unchanged.
func CompressImage(data []byte, mimeType string) *ImagePayload {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 ||
		int64(cfg.Width)*int64(cfg.Height) > MaxDecodePixels {
		return &ImagePayload{MIMEType: mimeType, Data: data}
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return &ImagePayload{MIMEType: mimeType, Data: data}
	}
	preset := PresetFor(len(data))

	b := src.Bounds()
	w, h := scaledSize(b.Dx(), b.Dy(), preset.MaxEdge)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: preset.Quality}); err != nil {
		return &ImagePayload{MIMEType: mimeType, Data: data}
	}
	return &ImagePayload{MIMEType: "image/jpeg", Data: buf.Bytes()}
}

// PrepareImage decodes and compresses an uploaded base64 image.
func PrepareImage(encoded string) (*ImagePayload, error) {
	data, mimeType, err := DecodeBase64Image(encoded)
	if err != nil {
		return nil, err
	}
	return CompressImage(data, mimeType), nil
}

func scaledSize(w, h, maxEdge int) (int, int) {
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxEdge || longest == 0 {
		return w, h
	}
	nw := w * maxEdge / longest
	nh := h * maxEdge / longest
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
