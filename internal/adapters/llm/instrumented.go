package llm

import (
	"context"
	"time"

	"github.com/PabloGalante/lumina/internal/domain"
	"github.com/PabloGalante/lumina/internal/observability"
)

// Instrumented wraps a gateway with latency metrics and diagnostic logging.
type Instrumented struct {
	next domain.Gateway
}

func NewInstrumented(next domain.Gateway) *Instrumented {
	return &Instrumented{next: next}
}

func (i *Instrumented) TransformImage(ctx context.Context, base domain.ImageBlob, instruction string) (domain.ImageBlob, error) {
	start := time.Now()
	out, err := i.next.TransformImage(ctx, base, instruction)
	elapsed := time.Since(start)
	observability.RecordGatewayCall("transform_image", elapsed, err)

	log := observability.LoggerFromContext(ctx).With("operation", "transform_image", "elapsed_ms", elapsed.Milliseconds())
	if err != nil {
		log.Error("gateway call failed", "error", err)
		return out, err
	}
	log.Info("gateway call done", "bytes_in", len(base.Data), "bytes_out", len(out.Data))
	return out, nil
}

func (i *Instrumented) ChatReply(ctx context.Context, history []domain.Message, newMessage string, contextImage *domain.ImageBlob) (string, error) {
	start := time.Now()
	reply, err := i.next.ChatReply(ctx, history, newMessage, contextImage)
	elapsed := time.Since(start)
	observability.RecordGatewayCall("chat_reply", elapsed, err)

	log := observability.LoggerFromContext(ctx).With("operation", "chat_reply", "elapsed_ms", elapsed.Milliseconds())
	if err != nil {
		log.Error("gateway call failed", "error", err)
		return reply, err
	}
	log.Info("gateway call done", "history_len", len(history), "with_image", contextImage != nil)
	return reply, nil
}
