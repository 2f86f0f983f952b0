package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, model string) (TextGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiService{
		client:    client,
		modelName: model,
	}, nil
}

// Generate implements TextGenerator.
func (g *geminiService) Generate(ctx context.Context, system, user string) (string, error) {
	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   2048,
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		log.Println("❌ No text content in Gemini response")
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
