package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

// ContentClientInterface is the structured-content half of the generative
// service: one call that returns the full guide as schema-constrained JSON.
type ContentClientInterface interface {
	GenerateGuideContent(ctx context.Context, city, country string, days int) (string, error)
}

// ImageClientInterface is the image half. Implementations return a data URL
// ("data:<mime>;base64,...") or an error; callers treat every error as a
// soft "no image".
type ImageClientInterface interface {
	GenerateImage(ctx context.Context, prompt string, aspect string) (string, error)
}

type GuideServiceInterface interface {
	GenerateGuide(ctx context.Context, city, country, duration string) (*response_models.CityGuide, error)
}

type GuideService struct {
	contentClient ContentClientInterface
	imageClient   ImageClientInterface
}

func NewGuideService(contentClient ContentClientInterface, imageClient ImageClientInterface) GuideServiceInterface {
	return &GuideService{
		contentClient: contentClient,
		imageClient:   imageClient,
	}
}

// gallery subjects, one image request each
var gallerySubjects = []string{
	"a famous landmark",
	"typical local food",
	"a lively street scene",
}

// GenerateGuide runs the three top-level operations concurrently: structured
// content, hero image, gallery. Only a content failure is fatal; a failed
// hero resolves to no image and failed gallery shots are dropped.
func (g *GuideService) GenerateGuide(ctx context.Context, city, country, duration string) (*response_models.CityGuide, error) {
	days := utils.ParseTripDays(duration)

	var (
		rawContent string
		contentErr error
		heroURL    string
		gallery    []string
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		rawContent, contentErr = g.contentClient.GenerateGuideContent(ctx, city, country, days)
	}()

	go func() {
		defer wg.Done()
		prompt := fmt.Sprintf("A beautiful, vibrant travel photograph of %s, %s. Iconic scenery, golden hour light, no text.", city, country)
		url, err := g.imageClient.GenerateImage(ctx, prompt, "16:9")
		if err != nil {
			log.Printf("hero image unavailable for %s: %v", city, err)
			return
		}
		heroURL = url
	}()

	go func() {
		defer wg.Done()
		gallery = g.generateGallery(ctx, city, country)
	}()

	wg.Wait()

	if contentErr != nil {
		log.Printf("guide content generation failed for %s, %s: %v", city, country, contentErr)
		return nil, utils.ErrGuideGeneration
	}

	guide, err := parseGuidePayload(rawContent)
	if err != nil {
		log.Printf("guide content unparseable for %s, %s: %v", city, country, err)
		return nil, utils.ErrGuideGeneration
	}

	if guide.City == "" {
		guide.City = city
	}
	if guide.Country == "" {
		guide.Country = country
	}
	guide.ImageURL = heroURL
	guide.Gallery = gallery
	guide.Markers = buildMarkers(guide)

	return guide, nil
}

// generateGallery issues the sub-requests concurrently. A failed shot is
// dropped so one bad image never costs its siblings; order follows the
// subject list, not completion order.
func (g *GuideService) generateGallery(ctx context.Context, city, country string) []string {
	results := make([]string, len(gallerySubjects))

	var wg sync.WaitGroup
	for i, subject := range gallerySubjects {
		wg.Add(1)
		go func(i int, subject string) {
			defer wg.Done()
			prompt := fmt.Sprintf("A travel photograph of %s in %s, %s. Natural light, documentary style, no text.", subject, city, country)
			url, err := g.imageClient.GenerateImage(ctx, prompt, "4:3")
			if err != nil {
				log.Printf("gallery image (%s) unavailable for %s: %v", subject, city, err)
				return
			}
			results[i] = url
		}(i, subject)
	}
	wg.Wait()

	gallery := make([]string, 0, len(results))
	for _, url := range results {
		if url != "" {
			gallery = append(gallery, url)
		}
	}
	return gallery
}

// guidePayload mirrors the response schema with pointer fields so absent
// sections can be told apart from zero values before defaults are applied.
type guidePayload struct {
	City         string                         `json:"city"`
	Country      string                         `json:"country"`
	Coordinates  *response_models.Coordinates   `json:"coordinates"`
	Introduction string                         `json:"introduction"`
	Weather      *response_models.Weather       `json:"weather"`
	Attractions  []response_models.Attraction   `json:"attractions"`
	MapContext   string                         `json:"mapContext"`
	Itinerary    []response_models.ItineraryDay `json:"itinerary"`
	LocalTips    []response_models.LocalTip     `json:"localTips"`
}

// parseGuidePayload decodes the structured-content JSON and fills every
// potentially-missing field with its documented default, so the merged
// guide is always fully shaped. For well-formed input this is the identity.
func parseGuidePayload(raw string) (*response_models.CityGuide, error) {
	var payload guidePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode guide content: %w", err)
	}

	guide := &response_models.CityGuide{
		City:         payload.City,
		Country:      payload.Country,
		Introduction: payload.Introduction,
		MapContext:   payload.MapContext,
		Attractions:  payload.Attractions,
		Itinerary:    payload.Itinerary,
		LocalTips:    payload.LocalTips,
	}

	if payload.Coordinates != nil {
		guide.Coordinates = *payload.Coordinates
	}
	if payload.Weather != nil {
		guide.Weather = *payload.Weather
	} else {
		guide.Weather = response_models.Weather{
			Temperature:       "N/A",
			Condition:         "Unknown",
			PackingSuggestion: "Please check local forecast.",
		}
	}
	if guide.Attractions == nil {
		guide.Attractions = []response_models.Attraction{}
	}
	if guide.Itinerary == nil {
		guide.Itinerary = []response_models.ItineraryDay{}
	}
	if guide.LocalTips == nil {
		guide.LocalTips = []response_models.LocalTip{}
	}

	return guide, nil
}

// buildMarkers derives the widget-ready marker set: the city center in red,
// attractions in blue. Entries at the unknown-position sentinel are skipped.
func buildMarkers(guide *response_models.CityGuide) []response_models.MapMarker {
	markers := make([]response_models.MapMarker, 0, len(guide.Attractions)+1)
	if !guide.Coordinates.Unknown() {
		markers = append(markers, response_models.MapMarker{
			Lat:   guide.Coordinates.Lat,
			Lng:   guide.Coordinates.Lng,
			Color: "red",
			Popup: fmt.Sprintf("%s, %s", guide.City, guide.Country),
		})
	}
	for _, a := range guide.Attractions {
		if a.Coordinates.Unknown() {
			continue
		}
		markers = append(markers, response_models.MapMarker{
			Lat:   a.Coordinates.Lat,
			Lng:   a.Coordinates.Lng,
			Color: "blue",
			Popup: fmt.Sprintf("%s: %s", a.Name, a.Benefit),
		})
	}
	return markers
}
