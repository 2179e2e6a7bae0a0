package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiImageClient generates photos with an image-capable Gemini model and
// returns them as data URLs, ready for an <img> src.
type GeminiImageClient struct {
	client *genai.Client
	model  string
}

func NewGeminiImageClient(apiKey, model string) (*GeminiImageClient, error) {
	if model == "" {
		model = "gemini-2.0-flash-preview-image-generation"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiImageClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiImageClient) GenerateImage(ctx context.Context, prompt string, aspect string) (string, error) {
	m := c.client.GenerativeModel(c.model)

	// The model takes the aspect ratio as a prompt hint.
	full := prompt
	if aspect != "" {
		full = fmt.Sprintf("%s Aspect ratio %s.", prompt, aspect)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(full))
	if err != nil {
		return "", fmt.Errorf("gemini image call failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				return fmt.Sprintf("data:%s;base64,%s", blob.MIMEType, base64.StdEncoding.EncodeToString(blob.Data)), nil
			}
		}
	}
	return "", fmt.Errorf("no image in Gemini response")
}
