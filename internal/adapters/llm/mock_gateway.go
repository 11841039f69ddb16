package llm

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/PabloGalante/lumina/internal/domain"
)

// MockGateway is a deterministic offline gateway. Transforms tint the base
// image with a colour derived from the instruction; chat replies are canned.
type MockGateway struct {
	// Delay simulates a remote round trip. Zero means immediate.
	Delay time.Duration
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *MockGateway) TransformImage(ctx context.Context, base domain.ImageBlob, instruction string) (domain.ImageBlob, error) {
	if err := m.wait(ctx); err != nil {
		return domain.ImageBlob{}, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	src, err := base.Decode()
	if err != nil {
		return domain.ImageBlob{}, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	tint := TintFor(instruction)
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Tint the straight colour so transparency is carried over untouched.
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.SetNRGBA(x, y, color.NRGBA{
				R: blend(c.R, tint.R),
				G: blend(c.G, tint.G),
				B: blend(c.B, tint.B),
				A: c.A,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return domain.ImageBlob{}, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}
	return domain.ImageBlob{MIMEType: "image/png", Data: buf.Bytes()}, nil
}

func (m *MockGateway) ChatReply(ctx context.Context, history []domain.Message, newMessage string, contextImage *domain.ImageBlob) (string, error) {
	if err := m.wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrChat, err)
	}

	seen := "no photo yet"
	if contextImage != nil {
		seen = "your current design"
	}
	return fmt.Sprintf(
		"Looking at %s, here is a thought on %q: keep one dominant neutral, add a warm accent and repeat it in textiles. (%d earlier messages considered)",
		seen, newMessage, len(history),
	), nil
}

// TintFor derives a stable colour from an instruction.
func TintFor(instruction string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(instruction))
	sum := h.Sum32()
	return color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 255}
}

// blend mixes a channel 70/30 with the tint.
func blend(c, tint uint8) uint8 {
	return uint8((uint32(c)*7 + uint32(tint)*3) / 10)
}
