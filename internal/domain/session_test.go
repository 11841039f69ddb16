package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/lumina/internal/domain"
)

func welcome(at time.Time) domain.Message {
	return domain.Message{ID: "welcome", Role: domain.RoleAssistant, Text: "hi", CreatedAt: at}
}

func TestBeginRequiresSourceImage(t *testing.T) {
	s := domain.NewSession("s1", time.Now())

	_, err := s.Begin(domain.StatusGenerating)
	require.ErrorIs(t, err, domain.ErrNoSourceImage)
	assert.Equal(t, domain.StatusIdle, s.Snapshot().Status)
}

func TestBeginAdmitsOneRequest(t *testing.T) {
	now := time.Now()
	s := domain.NewSession("s1", now)
	require.NoError(t, s.Reset(domain.ImageBlob{MIMEType: "image/png", Data: []byte("a")}, welcome(now)))

	_, err := s.Begin(domain.StatusChatting)
	require.NoError(t, err)

	_, err = s.Begin(domain.StatusGenerating)
	require.ErrorIs(t, err, domain.ErrBusy)
	assert.Equal(t, domain.StatusChatting, s.Snapshot().Status)

	s.End()
	assert.Equal(t, domain.StatusIdle, s.Snapshot().Status)
}

func TestResetClearsGeneratedState(t *testing.T) {
	now := time.Now()
	s := domain.NewSession("s1", now)
	require.NoError(t, s.Reset(domain.ImageBlob{Data: []byte("a")}, welcome(now)))
	require.NoError(t, s.SetCurrentImage(domain.ImageBlob{Data: []byte("b")}))
	s.Append(domain.Message{ID: "m1", Role: domain.RoleUser, Text: "hello", CreatedAt: now})

	require.NoError(t, s.Reset(domain.ImageBlob{Data: []byte("c")}, welcome(now)))

	snap := s.Snapshot()
	assert.Nil(t, snap.CurrentImage)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, domain.MessageID("welcome"), snap.Messages[0].ID)
	assert.Equal(t, []byte("c"), snap.SourceImage.Data)
}

func TestResetRejectedWhileBusy(t *testing.T) {
	now := time.Now()
	s := domain.NewSession("s1", now)
	require.NoError(t, s.Reset(domain.ImageBlob{Data: []byte("a")}, welcome(now)))
	_, err := s.Begin(domain.StatusGenerating)
	require.NoError(t, err)

	err = s.Reset(domain.ImageBlob{Data: []byte("b")}, welcome(now))
	require.ErrorIs(t, err, domain.ErrBusy)
	assert.Equal(t, []byte("a"), s.Snapshot().SourceImage.Data)
}

func TestSetCurrentImageNeedsSource(t *testing.T) {
	s := domain.NewSession("s1", time.Now())
	require.ErrorIs(t, s.SetCurrentImage(domain.ImageBlob{Data: []byte("x")}), domain.ErrNoSourceImage)
	assert.Nil(t, s.Snapshot().CurrentImage)
}

func TestSnapshotIsACopy(t *testing.T) {
	now := time.Now()
	s := domain.NewSession("s1", now)
	require.NoError(t, s.Reset(domain.ImageBlob{Data: []byte("a")}, welcome(now)))

	snap := s.Snapshot()
	snap.Messages[0].Text = "changed"

	assert.Equal(t, "hi", s.Snapshot().Messages[0].Text)
}

func TestDisplayImageFallsBackToSource(t *testing.T) {
	src := &domain.ImageBlob{Data: []byte("src")}
	cur := &domain.ImageBlob{Data: []byte("cur")}

	assert.Equal(t, src, domain.SessionSnapshot{SourceImage: src}.DisplayImage())
	assert.Equal(t, cur, domain.SessionSnapshot{SourceImage: src, CurrentImage: cur}.DisplayImage())
}
