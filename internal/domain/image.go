package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const defaultImageMIME = "image/jpeg"

// ImageBlob is an encoded image held fully in memory. It has no identity
// beyond its bytes and is passed around by value.
type ImageBlob struct {
	MIMEType string
	Data     []byte
}

// NewImageBlob validates that data decodes as a supported image and tags it
// with the sniffed MIME type.
func NewImageBlob(data []byte) (ImageBlob, error) {
	if len(data) == 0 {
		return ImageBlob{}, fmt.Errorf("%w: empty image", ErrInvalidInput)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageBlob{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return ImageBlob{
		MIMEType: "image/" + format,
		Data:     data,
	}, nil
}

// Decode returns the decoded pixels.
func (b ImageBlob) Decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return img, nil
}

// DataURL renders the blob as data:<mime>;base64,<payload>.
func (b ImageBlob) DataURL() string {
	mime := b.MIMEType
	if mime == "" {
		mime = defaultImageMIME
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b.Data)
}

// ParseDataURL accepts either a base64 data URL or a bare base64 payload,
// which is assumed to be JPEG.
func ParseDataURL(s string) (ImageBlob, error) {
	mime := defaultImageMIME
	payload := strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		meta, data, found := strings.Cut(rest, ",")
		if !found {
			return ImageBlob{}, fmt.Errorf("%w: malformed data url", ErrInvalidInput)
		}
		m, isBase64 := strings.CutSuffix(meta, ";base64")
		if !isBase64 {
			return ImageBlob{}, fmt.Errorf("%w: data url is not base64", ErrInvalidInput)
		}
		if m != "" {
			mime = m
		}
		payload = data
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ImageBlob{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return ImageBlob{MIMEType: mime, Data: raw}, nil
}
