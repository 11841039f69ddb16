package llm

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/PabloGalante/lumina/internal/domain"
)

const consultantSystemPrompt = `You are a helpful Interior Design Consultant. Provide specific advice, suggested color palettes, and describe items to buy. If the user asks for links, suggest specific search terms or well-known retailers, as you cannot browse the live web for real-time inventory. Keep answers concise and helpful.`

// emptyChatReply is returned when the model answers with no text at all.
const emptyChatReply = "I couldn't generate a response."

// BuildTransformPrompt wraps a style or freeform instruction in the
// interior-designer framing sent with the room photo.
func BuildTransformPrompt(instruction string) string {
	return fmt.Sprintf(
		"Act as an expert interior designer. Transform the attached room image based on this style or instruction: %q. "+
			"Maintain the structural integrity of the room (windows, doors, walls) but change the decor, furniture, colors, and lighting to match the requested style. "+
			"Return ONLY the image.",
		strings.TrimSpace(instruction),
	)
}

// BuildChatContents maps the session history plus the new message (with the
// image the user is looking at) to Gemini contents. Leading assistant
// messages are dropped so the conversation opens with a user turn.
func BuildChatContents(history []domain.Message, newMessage string, contextImage *domain.ImageBlob) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)

	for _, m := range history {
		var role genai.Role
		switch m.Role {
		case domain.RoleUser:
			role = genai.RoleUser
		case domain.RoleAssistant:
			if len(contents) == 0 {
				continue
			}
			role = genai.RoleModel
		default:
			continue
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	parts := []*genai.Part{genai.NewPartFromText(newMessage)}
	if contextImage != nil && len(contextImage.Data) > 0 {
		parts = append(parts, genai.NewPartFromBytes(contextImage.Data, mimeOrDefault(contextImage.MIMEType)))
	}
	contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))

	return contents
}

func mimeOrDefault(mime string) string {
	if mime == "" {
		return "image/jpeg"
	}
	return mime
}
