package domain

import "sync"

// Message is one entry in a session's log. Messages are never mutated once
// appended.
type Message struct {
	ID        MessageID
	Role      Role
	Text      string
	CreatedAt Timestamp
}

// Style is a static catalog entry.
type Style struct {
	ID          StyleID `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Instruction string  `yaml:"instruction" json:"instruction"`
	Preview     string  `yaml:"preview" json:"preview"`
}

// Session is the state of one design session. All mutable fields are
// guarded by mu; readers work on Snapshot copies.
type Session struct {
	ID        SessionID
	CreatedAt Timestamp

	mu           sync.Mutex
	updatedAt    Timestamp
	sourceImage  *ImageBlob
	currentImage *ImageBlob
	messages     []Message
	status       Status
}

// SessionSnapshot is a point-in-time copy of a Session.
type SessionSnapshot struct {
	ID           SessionID
	CreatedAt    Timestamp
	UpdatedAt    Timestamp
	SourceImage  *ImageBlob
	CurrentImage *ImageBlob
	Messages     []Message
	Status       Status
}

// DisplayImage is the image the user currently sees: the last generated one,
// falling back to the upload.
func (s SessionSnapshot) DisplayImage() *ImageBlob {
	if s.CurrentImage != nil {
		return s.CurrentImage
	}
	return s.SourceImage
}

// NewSession returns an idle, empty session.
func NewSession(id SessionID, now Timestamp) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		updatedAt: now,
		status:    StatusIdle,
	}
}

func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() SessionSnapshot {
	snap := SessionSnapshot{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.updatedAt,
		Messages:  append([]Message(nil), s.messages...),
		Status:    s.status,
	}
	if s.sourceImage != nil {
		img := *s.sourceImage
		snap.SourceImage = &img
	}
	if s.currentImage != nil {
		img := *s.currentImage
		snap.CurrentImage = &img
	}
	return snap
}

// Reset replaces the source image, drops any generated image and restarts
// the log with welcome. Rejected while a request is in flight.
func (s *Session) Reset(source ImageBlob, welcome Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Busy() {
		return ErrBusy
	}

	s.sourceImage = &source
	s.currentImage = nil
	s.messages = []Message{welcome}
	s.status = StatusIdle
	s.updatedAt = welcome.CreatedAt
	return nil
}

// Begin is the admission gate: it moves an idle session with a source image
// into next and returns the state as it was just before.
func (s *Session) Begin(next Status) (SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sourceImage == nil {
		return SessionSnapshot{}, ErrNoSourceImage
	}
	if s.status.Busy() {
		return SessionSnapshot{}, ErrBusy
	}

	snap := s.snapshotLocked()
	s.status = next
	return snap, nil
}

// End returns the session to idle.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusIdle
}

func (s *Session) Append(msgs ...Message) {
	if len(msgs) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msgs...)
	s.updatedAt = msgs[len(msgs)-1].CreatedAt
}

// SetCurrentImage records a generated image. A session without a source
// image never gets a current one.
func (s *Session) SetCurrentImage(img ImageBlob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sourceImage == nil {
		return ErrNoSourceImage
	}
	s.currentImage = &img
	return nil
}
