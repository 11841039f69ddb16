package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/PabloGalante/lumina/internal/config"
	"github.com/PabloGalante/lumina/internal/domain"
)

// contentGenerator is the slice of *genai.Models the gateway needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGateway implements domain.Gateway on top of the Gemini API, either
// through an API key or through Vertex AI.
type GeminiGateway struct {
	models     contentGenerator
	imageModel string
	chatModel  string
}

// NewGeminiGateway creates a gateway from the loaded config.
func NewGeminiGateway(ctx context.Context, cfg *config.Config) (*GeminiGateway, error) {
	cc := &genai.ClientConfig{}
	switch cfg.Mode {
	case config.ModeGCP:
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.GCPProjectID
		cc.Location = cfg.GCPLocation
	default:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini gateway: api key is required")
		}
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return newGeminiGateway(client.Models, cfg.ImageModel, cfg.ChatModel), nil
}

func newGeminiGateway(models contentGenerator, imageModel, chatModel string) *GeminiGateway {
	return &GeminiGateway{
		models:     models,
		imageModel: imageModel,
		chatModel:  chatModel,
	}
}

// TransformImage implements domain.Gateway.
func (g *GeminiGateway) TransformImage(
	ctx context.Context,
	base domain.ImageBlob,
	instruction string,
) (domain.ImageBlob, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(BuildTransformPrompt(instruction)),
			genai.NewPartFromBytes(base.Data, mimeOrDefault(base.MIMEType)),
		}, genai.RoleUser),
	}

	res, err := g.models.GenerateContent(ctx, g.imageModel, contents, nil)
	if err != nil {
		return domain.ImageBlob{}, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	blob, ok := firstInlineImage(res)
	if !ok {
		return domain.ImageBlob{}, fmt.Errorf("%w: no image in response", domain.ErrGeneration)
	}
	return blob, nil
}

// ChatReply implements domain.Gateway.
func (g *GeminiGateway) ChatReply(
	ctx context.Context,
	history []domain.Message,
	newMessage string,
	contextImage *domain.ImageBlob,
) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(consultantSystemPrompt, genai.RoleUser),
	}

	res, err := g.models.GenerateContent(ctx, g.chatModel, BuildChatContents(history, newMessage, contextImage), cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrChat, err)
	}

	text := res.Text()
	if text == "" {
		return emptyChatReply, nil
	}
	return text, nil
}

func firstInlineImage(res *genai.GenerateContentResponse) (domain.ImageBlob, bool) {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return domain.ImageBlob{}, false
	}
	for _, p := range res.Candidates[0].Content.Parts {
		if p == nil || p.InlineData == nil || len(p.InlineData.Data) == 0 {
			continue
		}
		mime := p.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return domain.ImageBlob{MIMEType: mime, Data: p.InlineData.Data}, true
	}
	return domain.ImageBlob{}, false
}
