package domain

import "time"

type SessionID string
type MessageID string
type StyleID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Status is the session-wide busy flag. Only one gateway request may be in
// flight per session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusChatting   Status = "chatting"
)

// Busy reports whether a gateway request is in flight.
func (s Status) Busy() bool {
	return s != StatusIdle
}

type Timestamp = time.Time
