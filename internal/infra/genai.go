package infra

import (
	"log"
	"os"

	"roamio/internal/services"
	"roamio/pkg/utils"
)

// InitContentClient builds the structured-content client from the
// environment. The process is useless without it, so a bad key is fatal.
func InitContentClient() services.ContentClientInterface {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	client, err := utils.NewGeminiGuideClient(apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Error creating Gemini content client: %v", err)
	}
	return client
}

// InitImageClient picks the image provider. Gemini is the default;
// IMAGE_PROVIDER=openai switches to DALL-E.
func InitImageClient() services.ImageClientInterface {
	if os.Getenv("IMAGE_PROVIDER") == "openai" {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is not set")
		}
		return utils.NewOpenAIImageClient(apiKey)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}
	client, err := utils.NewGeminiImageClient(apiKey, os.Getenv("GEMINI_IMAGE_MODEL"))
	if err != nil {
		log.Fatalf("Error creating Gemini image client: %v", err)
	}
	return client
}
