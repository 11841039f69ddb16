package studio

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/lumina/internal/app/catalog"
	"github.com/PabloGalante/lumina/internal/domain"
	"github.com/PabloGalante/lumina/internal/observability"
)

// Service hands out one Controller per session for front ends that serve
// many users at once.
type Service struct {
	gateway domain.Gateway
	store   domain.SessionStore
	styles  *catalog.Catalog
	now     func() time.Time
}

func NewService(gateway domain.Gateway, store domain.SessionStore, styles *catalog.Catalog) *Service {
	return &Service{
		gateway: gateway,
		store:   store,
		styles:  styles,
		now:     time.Now,
	}
}

// CreateSession starts an empty, idle session.
func (s *Service) CreateSession(ctx context.Context) (domain.SessionSnapshot, error) {
	session := domain.NewSession(domain.SessionID(uuid.NewString()), s.now())

	log := observability.LoggerFromContext(ctx).With("session_id", session.ID)

	if err := s.store.CreateSession(session); err != nil {
		log.Error("failed to create session", "error", err)
		return domain.SessionSnapshot{}, err
	}
	s.reportActive()

	log.Info("session started")
	return session.Snapshot(), nil
}

// Controller returns the controller bound to session id.
func (s *Service) Controller(id domain.SessionID) (*Controller, error) {
	session, err := s.store.GetSession(id)
	if err != nil {
		return nil, err
	}
	return NewController(session, s.gateway), nil
}

func (s *Service) DeleteSession(ctx context.Context, id domain.SessionID) error {
	if err := s.store.DeleteSession(id); err != nil {
		return err
	}
	s.reportActive()
	observability.LoggerFromContext(ctx).Info("session deleted", "session_id", id)
	return nil
}

func (s *Service) Styles() []domain.Style {
	return s.styles.All()
}

func (s *Service) Style(id domain.StyleID) (domain.Style, error) {
	return s.styles.Get(id)
}

func (s *Service) reportActive() {
	if all, err := s.store.ListSessions(); err == nil {
		observability.SetSessionsActive(len(all))
	}
}
