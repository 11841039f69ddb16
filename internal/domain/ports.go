package domain

import "context"

// Gateway is the boundary to the generative AI service.
type Gateway interface {
	// TransformImage restyles base according to instruction. Errors wrap
	// ErrGeneration.
	TransformImage(ctx context.Context, base ImageBlob, instruction string) (ImageBlob, error)

	// ChatReply answers newMessage given the prior history and, optionally,
	// the image the user is looking at. Errors wrap ErrChat.
	ChatReply(ctx context.Context, history []Message, newMessage string, contextImage *ImageBlob) (string, error)
}

// SessionStore keeps live sessions for the lifetime of the process.
type SessionStore interface {
	CreateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
	DeleteSession(id SessionID) error
	ListSessions() ([]*Session, error)
}
