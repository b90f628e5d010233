// gemini.go - Google Gemini client for the advisor

package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// systemInstruction pins the model to the doctor persona. Off-topic questions
// get the fixed refusal line instead of an answer.
const systemInstruction = `You are a doctor. You must only reply to health-related questions.

You must solve queries, questions, and problems in an accurate and simple way.

You must not reply to any other topic or question.

If you are asked about anything else, just say 'I am a doctor, I can only answer health-related questions.'

Else if a user asks about health-related problems, you must reply in a very polite, simple, and easy-to-understand way.`

// Client is the minimal surface the advisor needs from a generative model.
// Tests substitute a stub; production uses GeminiClient.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini API with the health system instruction.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends a single-turn prompt and returns the raw model text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty response")
	}
	return text, nil
}
