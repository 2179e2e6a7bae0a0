package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGuideClient generates the structured city-guide content with a
// strict response schema, so the reply is clean JSON matching the guide
// shape with no brace-matching cleanup needed.
type GeminiGuideClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGuideClient(apiKey, model string) (*GeminiGuideClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGuideClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGuideClient) GenerateGuideContent(ctx context.Context, city, country string, days int) (string, error) {
	if strings.TrimSpace(city) == "" || strings.TrimSpace(country) == "" {
		return "", fmt.Errorf("city and country are required")
	}
	if days < MinTripDays || days > MaxTripDays {
		return "", fmt.Errorf("bad day count %d", days)
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = cityGuideSchema
	m.SetTemperature(0.4)
	m.SetTopP(0.8)
	m.SetTopK(20)

	prompt := buildGuidePrompt(city, country, days)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected part type in Gemini response")
	}
	return string(text), nil
}

func buildGuidePrompt(city, country string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a complete travel guide for %s, %s for a %d-day trip.\n", city, country, days)
	b.WriteString(`Include:
- a warm two-paragraph introduction
- the city's latitude and longitude
- current-season weather with a packing suggestion
- the top 5 attractions, each with one sentence on why it is worth visiting and its coordinates
- a short narrative describing the city's geography for a map overview
`)
	fmt.Fprintf(&b, "- a day-by-day itinerary for exactly %d day(s), each day with a theme and timed activities\n", days)
	b.WriteString("- practical local tips grouped by category (transport, etiquette, money, safety, food)\n")
	return b.String()
}

// cityGuideSchema pins the response to the CityGuide shape. Every field the
// merge step reads is declared here; the itinerary length is enforced by the
// prompt since the schema language has no "exactly N items".
var cityGuideSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"city":    {Type: genai.TypeString},
		"country": {Type: genai.TypeString},
		"coordinates": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"lat": {Type: genai.TypeNumber},
				"lng": {Type: genai.TypeNumber},
			},
			Required: []string{"lat", "lng"},
		},
		"introduction": {Type: genai.TypeString},
		"weather": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"temperature":       {Type: genai.TypeString},
				"condition":         {Type: genai.TypeString},
				"packingSuggestion": {Type: genai.TypeString},
			},
			Required: []string{"temperature", "condition", "packingSuggestion"},
		},
		"attractions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":    {Type: genai.TypeString},
					"benefit": {Type: genai.TypeString},
					"coordinates": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"lat": {Type: genai.TypeNumber},
							"lng": {Type: genai.TypeNumber},
						},
						Required: []string{"lat", "lng"},
					},
				},
				Required: []string{"name", "benefit", "coordinates"},
			},
		},
		"mapContext": {Type: genai.TypeString},
		"itinerary": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":   {Type: genai.TypeInteger},
					"theme": {Type: genai.TypeString},
					"activities": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"time":     {Type: genai.TypeString},
								"activity": {Type: genai.TypeString},
							},
							Required: []string{"time", "activity"},
						},
					},
				},
				Required: []string{"day", "theme", "activities"},
			},
		},
		"localTips": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {Type: genai.TypeString},
					"tip":      {Type: genai.TypeString},
				},
				Required: []string{"category", "tip"},
			},
		},
	},
	Required: []string{"city", "country", "coordinates", "introduction", "weather", "attractions", "mapContext", "itinerary", "localTips"},
}
