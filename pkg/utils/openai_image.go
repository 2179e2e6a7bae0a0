package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIImageClient is the alternate image provider, selected with
// IMAGE_PROVIDER=openai. DALL-E returns base64 PNG data which is wrapped
// into a data URL like the Gemini client's output.
type OpenAIImageClient struct {
	client *openai.Client
}

func NewOpenAIImageClient(apiKey string) *OpenAIImageClient {
	return &OpenAIImageClient{client: openai.NewClient(apiKey)}
}

func (c *OpenAIImageClient) GenerateImage(ctx context.Context, prompt string, aspect string) (string, error) {
	size := openai.CreateImageSize1024x1024
	if aspect == "16:9" {
		size = openai.CreateImageSize1792x1024
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateImage(ctxWithTimeout, openai.ImageRequest{
		Prompt:         prompt,
		Model:          openai.CreateImageModelDallE3,
		N:              1,
		Size:           size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai image call failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("no image in OpenAI response")
	}
	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}
