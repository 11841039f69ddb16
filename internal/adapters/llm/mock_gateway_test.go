package llm_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/lumina/internal/adapters/llm"
	"github.com/PabloGalante/lumina/internal/domain"
)

func solidPNG(t *testing.T, w, h int, c color.Color) domain.ImageBlob {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return domain.ImageBlob{MIMEType: "image/png", Data: buf.Bytes()}
}

func TestMockTransformIsDeterministic(t *testing.T) {
	gw := llm.NewMockGateway()
	base := solidPNG(t, 6, 4, color.White)

	a, err := gw.TransformImage(context.Background(), base, "Industrial")
	require.NoError(t, err)
	b, err := gw.TransformImage(context.Background(), base, "Industrial")
	require.NoError(t, err)
	c, err := gw.TransformImage(context.Background(), base, "Bohemian")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Data, c.Data)

	img, err := a.Decode()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
}

func TestMockTransformRejectsUndecodableBase(t *testing.T) {
	_, err := llm.NewMockGateway().TransformImage(context.Background(), domain.ImageBlob{Data: []byte("nope")}, "x")
	require.ErrorIs(t, err, domain.ErrGeneration)
}

func TestMockHonoursCancellation(t *testing.T) {
	gw := &llm.MockGateway{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.ChatReply(ctx, nil, "hi", nil)
	require.ErrorIs(t, err, domain.ErrChat)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMockTransformKeepsTransparency(t *testing.T) {
	base := solidPNG(t, 4, 4, color.RGBA{})

	out, err := llm.NewMockGateway().TransformImage(context.Background(), base, "Scandinavian")
	require.NoError(t, err)

	img, err := out.Decode()
	require.NoError(t, err)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			require.Zero(t, a, "pixel %d,%d", x, y)
			require.LessOrEqual(t, r, a)
			require.LessOrEqual(t, g, a)
			require.LessOrEqual(t, bl, a)
		}
	}
}
