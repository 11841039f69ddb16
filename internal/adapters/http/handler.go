package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PabloGalante/lumina/internal/app/studio"
	"github.com/PabloGalante/lumina/internal/compare"
	"github.com/PabloGalante/lumina/internal/domain"
	"github.com/PabloGalante/lumina/internal/observability"
)

type Server struct {
	svc            *studio.Service
	maxUploadBytes int64
}

func NewServer(svc *studio.Service, maxUploadBytes int64) http.Handler {
	s := &Server{svc: svc, maxUploadBytes: maxUploadBytes}

	r := chi.NewRouter()
	r.Use(withRequestID, withLogging, withCORS)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/styles", s.handleListStyles)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/image", s.handleUpload)
			r.Get("/image/{which}", s.handleGetImage)
			r.Post("/style", s.handleSelectStyle)
			r.Post("/messages", s.handleSendMessage)
			r.Get("/compare", s.handleCompare)
		})
	})

	return r
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type sessionResponse struct {
	ID              string            `json:"id"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	HasSourceImage  bool              `json:"has_source_image"`
	HasCurrentImage bool              `json:"has_current_image"`
	SourceImage     string            `json:"source_image,omitempty"`
	CurrentImage    string            `json:"current_image,omitempty"`
	Messages        []messageResponse `json:"messages"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type uploadJSONRequest struct {
	DataURL string `json:"data_url"`
}

type selectStyleRequest struct {
	StyleID string `json:"style_id"`
}

type sendMessageRequest struct {
	Text   string `json:"text"`
	Refine bool   `json:"refine"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"styles": s.svc.Styles()})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.svc.CreateSession(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(snap, false))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(ctrl.Snapshot(), wantsInlineImages(r)))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteSession(r.Context(), sessionID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	data, err := readUpload(r)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "upload too large"})
			return
		}
		badRequest(w, err.Error())
		return
	}

	if err := ctrl.Upload(r.Context(), data); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(ctrl.Snapshot(), false))
}

func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}

	snap := ctrl.Snapshot()
	var img *domain.ImageBlob
	switch chi.URLParam(r, "which") {
	case "source":
		img = snap.SourceImage
	case "current":
		img = snap.CurrentImage
	default:
		http.NotFound(w, r)
		return
	}
	if img == nil {
		notFound(w, "image not available")
		return
	}

	w.Header().Set("Content-Type", img.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

func (s *Server) handleSelectStyle(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}

	var req selectStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.StyleID == "" {
		badRequest(w, "style_id is required")
		return
	}

	style, err := s.svc.Style(domain.StyleID(req.StyleID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := ctrl.SelectStyle(r.Context(), style); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(ctrl.Snapshot(), false))
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "text is required")
		return
	}

	if err := ctrl.SendMessage(r.Context(), req.Text, req.Refine); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(ctrl.Snapshot(), false))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}

	percent := compare.DefaultPercent
	if v := r.URL.Query().Get("divider"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badRequest(w, "divider must be a number between 0 and 100")
			return
		}
		percent = p
	}

	snap := ctrl.Snapshot()
	if snap.SourceImage == nil || snap.CurrentImage == nil {
		notFound(w, "nothing to compare yet")
		return
	}

	before, err := snap.SourceImage.Decode()
	if err != nil {
		writeError(w, r, err)
		return
	}
	after, err := snap.CurrentImage.Decode()
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, compare.Composite(before, after, percent)); err != nil {
		observability.LoggerFromContext(r.Context()).Error("encoding composite", "error", err)
	}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func sessionID(r *http.Request) domain.SessionID {
	return domain.SessionID(chi.URLParam(r, "sessionID"))
}

func (s *Server) controller(w http.ResponseWriter, r *http.Request) (*studio.Controller, bool) {
	ctrl, err := s.svc.Controller(sessionID(r))
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return ctrl, true
}

// readUpload accepts a multipart "file" field, a JSON {"data_url": ...}
// body, or the raw image bytes.
func readUpload(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("reading file field: %w", err)
		}
		defer f.Close()
		return io.ReadAll(f)

	case "application/json":
		var req uploadJSONRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		blob, err := domain.ParseDataURL(req.DataURL)
		if err != nil {
			return nil, err
		}
		return blob.Data, nil

	default:
		return io.ReadAll(r.Body)
	}
}

func wantsInlineImages(r *http.Request) bool {
	v := r.URL.Query().Get("include_images")
	return v == "1" || v == "true"
}

func toSessionResponse(s domain.SessionSnapshot, inlineImages bool) sessionResponse {
	resp := sessionResponse{
		ID:              string(s.ID),
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		HasSourceImage:  s.SourceImage != nil,
		HasCurrentImage: s.CurrentImage != nil,
		Messages:        toMessagesResponse(s.Messages),
	}
	if inlineImages {
		if s.SourceImage != nil {
			resp.SourceImage = s.SourceImage.DataURL()
		}
		if s.CurrentImage != nil {
			resp.CurrentImage = s.CurrentImage.DataURL()
		}
	}
	return resp
}

func toMessagesResponse(msgs []domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse{
			ID:        string(m.ID),
			Role:      string(m.Role),
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": msg,
	})
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrStyleNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrBusy):
		status, msg = http.StatusConflict, "a request is already in progress for this session"
	case errors.Is(err, domain.ErrNoSourceImage):
		status, msg = http.StatusPreconditionFailed, "upload an image first"
	case errors.Is(err, context.Canceled):
		// client went away
		return
	default:
		observability.LoggerFromContext(r.Context()).Error("request failed", "error", err)
	}

	writeJSON(w, status, map[string]string{"error": msg})
}
