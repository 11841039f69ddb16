package studio

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/lumina/internal/domain"
	"github.com/PabloGalante/lumina/internal/observability"
)

// Controller runs the upload, style, refine and chat flows for one session.
// It is the only writer of the session and the only caller of the gateway.
type Controller struct {
	session *domain.Session
	gateway domain.Gateway
	now     func() time.Time
	newID   func() string
}

func NewController(session *domain.Session, gateway domain.Gateway) *Controller {
	return &Controller{
		session: session,
		gateway: gateway,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Snapshot returns the current session state for rendering.
func (c *Controller) Snapshot() domain.SessionSnapshot {
	return c.session.Snapshot()
}

// Upload replaces the source image. data must decode as an image; on
// ErrInvalidInput the session is left untouched.
func (c *Controller) Upload(ctx context.Context, data []byte) error {
	log := c.logger(ctx).With("bytes", len(data))

	blob, err := domain.NewImageBlob(data)
	if err != nil {
		log.Warn("rejected upload", "error", err)
		return err
	}

	if err := c.session.Reset(blob, c.message(domain.RoleAssistant, WelcomeText)); err != nil {
		observability.RecordRejected("busy")
		log.Warn("upload rejected", "error", err)
		return err
	}

	log.Info("source image uploaded", "mime", blob.MIMEType)
	return nil
}

// SelectStyle restyles the source image. It is rejected with ErrNoSourceImage
// or ErrBusy without touching the session or the gateway.
func (c *Controller) SelectStyle(ctx context.Context, style domain.Style) error {
	log := c.logger(ctx).With("style", style.ID)

	prev, err := c.admit(domain.StatusGenerating)
	if err != nil {
		log.Warn("style request rejected", "error", err)
		return err
	}
	defer c.session.End()

	log.Info("generating style")
	out, err := c.gateway.TransformImage(ctx, *prev.SourceImage, style.Instruction)
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Info("style request cancelled")
		return ctxErr
	}
	if err != nil {
		log.Error("style generation failed", "error", err)
		c.session.Append(c.message(domain.RoleAssistant, StyleFailedText))
		return nil
	}

	if err := c.session.SetCurrentImage(out); err != nil {
		return err
	}
	c.session.Append(c.message(domain.RoleAssistant, StyleAppliedText(style.Name)))
	log.Info("style applied")
	return nil
}

// SendMessage appends the user's text and either refines the visible image
// (refine) or asks the assistant about it. Blank text is ignored.
func (c *Controller) SendMessage(ctx context.Context, text string, refine bool) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	next := domain.StatusChatting
	if refine {
		next = domain.StatusGenerating
	}

	log := c.logger(ctx).With("refine", refine)

	prev, err := c.admit(next)
	if err != nil {
		log.Warn("message rejected", "error", err)
		return err
	}
	defer c.session.End()

	c.session.Append(c.message(domain.RoleUser, text))
	base := prev.DisplayImage()

	if refine {
		return c.refine(ctx, *base, text)
	}
	return c.chat(ctx, prev.Messages, text, base)
}

func (c *Controller) refine(ctx context.Context, base domain.ImageBlob, instruction string) error {
	log := c.logger(ctx)

	out, err := c.gateway.TransformImage(ctx, base, instruction)
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Info("refinement cancelled")
		return ctxErr
	}
	if err != nil {
		log.Error("refinement failed", "error", err)
		c.session.Append(c.message(domain.RoleAssistant, RefineFailedText))
		return nil
	}

	if err := c.session.SetCurrentImage(out); err != nil {
		return err
	}
	c.session.Append(c.message(domain.RoleAssistant, RefinedText))
	log.Info("refinement applied")
	return nil
}

func (c *Controller) chat(ctx context.Context, history []domain.Message, text string, image *domain.ImageBlob) error {
	log := c.logger(ctx)

	reply, err := c.gateway.ChatReply(ctx, history, text, image)
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Info("chat cancelled")
		return ctxErr
	}
	if err != nil {
		log.Error("chat failed", "error", err)
		reply = ChatFailedText
	}

	c.session.Append(c.message(domain.RoleAssistant, reply))
	return nil
}

func (c *Controller) admit(next domain.Status) (domain.SessionSnapshot, error) {
	prev, err := c.session.Begin(next)
	switch {
	case errors.Is(err, domain.ErrBusy):
		observability.RecordRejected("busy")
	case errors.Is(err, domain.ErrNoSourceImage):
		observability.RecordRejected("no_source")
	}
	return prev, err
}

func (c *Controller) message(role domain.Role, text string) domain.Message {
	return domain.Message{
		ID:        domain.MessageID(c.newID()),
		Role:      role,
		Text:      text,
		CreatedAt: c.now(),
	}
}

func (c *Controller) logger(ctx context.Context) *slog.Logger {
	return observability.LoggerFromContext(ctx).With("session_id", c.session.ID)
}
