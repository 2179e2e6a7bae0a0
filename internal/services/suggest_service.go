package services

import (
	"context"
	"strings"

	"roamio/internal/models/domain_models"
	"roamio/internal/repositories"
)

type SuggestServiceInterface interface {
	// MatchCities returns directory entries whose city starts with partialCity,
	// case-insensitive, in directory order. When currentCountry is non-empty
	// the hits are further restricted to entries whose country equals or
	// contains currentCountry. A trimmed-empty partialCity yields no hits.
	MatchCities(ctx context.Context, partialCity string, currentCountry string) ([]domain_models.Location, error)

	// MatchCountries returns unique country names starting with partialCountry,
	// case-insensitive, in first-seen directory order.
	MatchCountries(ctx context.Context, partialCountry string) ([]string, error)

	// MatchCitiesForCountry returns every directory entry whose country equals
	// the given name case-insensitively. Serves the city-field focus case where
	// a country is already set but no city text has been typed.
	MatchCitiesForCountry(ctx context.Context, country string) ([]domain_models.Location, error)
}

type SuggestService struct {
	locationRepository repositories.LocationRepository
}

func NewSuggestService(locationRepository repositories.LocationRepository) SuggestServiceInterface {
	return &SuggestService{
		locationRepository: locationRepository,
	}
}

// Matching is ASCII case-folded via strings.ToLower; behavior for non-ASCII
// directory entries is unspecified and the curated directory avoids them.
func (s *SuggestService) MatchCities(ctx context.Context, partialCity string, currentCountry string) ([]domain_models.Location, error) {
	query := strings.ToLower(strings.TrimSpace(partialCity))
	if query == "" {
		return []domain_models.Location{}, nil
	}

	directory, err := s.locationRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	countryQuery := strings.ToLower(strings.TrimSpace(currentCountry))

	matches := make([]domain_models.Location, 0)
	for _, loc := range directory {
		if !strings.HasPrefix(strings.ToLower(loc.City), query) {
			continue
		}
		if countryQuery != "" {
			country := strings.ToLower(loc.Country)
			if country != countryQuery && !strings.Contains(country, countryQuery) {
				continue
			}
		}
		matches = append(matches, loc)
	}
	return matches, nil
}

func (s *SuggestService) MatchCountries(ctx context.Context, partialCountry string) ([]string, error) {
	query := strings.ToLower(strings.TrimSpace(partialCountry))
	if query == "" {
		return []string{}, nil
	}

	directory, err := s.locationRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	matches := make([]string, 0)
	for _, loc := range directory {
		if !strings.HasPrefix(strings.ToLower(loc.Country), query) {
			continue
		}
		if _, ok := seen[loc.Country]; ok {
			continue
		}
		seen[loc.Country] = struct{}{}
		matches = append(matches, loc.Country)
	}
	return matches, nil
}

func (s *SuggestService) MatchCitiesForCountry(ctx context.Context, country string) ([]domain_models.Location, error) {
	query := strings.ToLower(strings.TrimSpace(country))
	if query == "" {
		return []domain_models.Location{}, nil
	}

	directory, err := s.locationRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]domain_models.Location, 0)
	for _, loc := range directory {
		if strings.ToLower(loc.Country) == query {
			matches = append(matches, loc)
		}
	}
	return matches, nil
}
