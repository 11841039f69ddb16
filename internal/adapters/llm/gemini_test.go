package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/PabloGalante/lumina/internal/domain"
)

type fakeModels struct {
	res *genai.GenerateContentResponse
	err error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = cfg
	return f.res, f.err
}

func responseWithParts(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: genai.RoleModel, Parts: parts}}},
	}
}

func TestTransformImageReturnsInlineImage(t *testing.T) {
	fake := &fakeModels{res: responseWithParts(
		genai.NewPartFromText("here you go"),
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("png-bytes")}},
	)}
	g := newGeminiGateway(fake, "image-model", "chat-model")

	out, err := g.TransformImage(context.Background(), domain.ImageBlob{MIMEType: "image/jpeg", Data: []byte("room")}, "Japandi")
	require.NoError(t, err)
	assert.Equal(t, domain.ImageBlob{MIMEType: "image/png", Data: []byte("png-bytes")}, out)

	assert.Equal(t, "image-model", fake.gotModel)
	require.Len(t, fake.gotContents, 1)
	parts := fake.gotContents[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, `"Japandi"`)
	assert.Equal(t, []byte("room"), parts[1].InlineData.Data)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MIMEType)
}

func TestTransformImageWithoutImageFails(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeModels
	}{
		{"text only", &fakeModels{res: responseWithParts(genai.NewPartFromText("sorry"))}},
		{"no candidates", &fakeModels{res: &genai.GenerateContentResponse{}}},
		{"remote error", &fakeModels{err: errors.New("quota")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGeminiGateway(tt.fake, "image-model", "chat-model")
			_, err := g.TransformImage(context.Background(), domain.ImageBlob{Data: []byte("room")}, "boho")
			require.ErrorIs(t, err, domain.ErrGeneration)
		})
	}
}

func TestChatReply(t *testing.T) {
	fake := &fakeModels{res: responseWithParts(genai.NewPartFromText("Try a jute rug"))}
	g := newGeminiGateway(fake, "image-model", "chat-model")

	history := []domain.Message{
		{Role: domain.RoleAssistant, Text: "welcome"},
		{Role: domain.RoleUser, Text: "hi"},
		{Role: domain.RoleAssistant, Text: "hello"},
	}
	reply, err := g.ChatReply(context.Background(), history, "what color rug?", &domain.ImageBlob{MIMEType: "image/png", Data: []byte("img")})
	require.NoError(t, err)
	assert.Equal(t, "Try a jute rug", reply)

	assert.Equal(t, "chat-model", fake.gotModel)
	require.NotNil(t, fake.gotConfig.SystemInstruction)
	require.Len(t, fake.gotContents, 3)
	assert.Equal(t, string(genai.RoleUser), fake.gotContents[0].Role)
	assert.Equal(t, string(genai.RoleModel), fake.gotContents[1].Role)
	last := fake.gotContents[2]
	require.Len(t, last.Parts, 2)
	assert.Equal(t, "what color rug?", last.Parts[0].Text)
	assert.Equal(t, []byte("img"), last.Parts[1].InlineData.Data)
}

func TestChatReplyEmptyAndError(t *testing.T) {
	g := newGeminiGateway(&fakeModels{res: &genai.GenerateContentResponse{}}, "i", "c")
	reply, err := g.ChatReply(context.Background(), nil, "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, emptyChatReply, reply)

	g = newGeminiGateway(&fakeModels{err: errors.New("down")}, "i", "c")
	_, err = g.ChatReply(context.Background(), nil, "hi", nil)
	require.ErrorIs(t, err, domain.ErrChat)
}
