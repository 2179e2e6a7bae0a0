package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/domain_models"
	"roamio/internal/repositories"
)

var testDirectory = []domain_models.Location{
	{City: "Paris", Country: "France"},
	{City: "Nice", Country: "France"},
	{City: "Palermo", Country: "Italy"},
	{City: "Rome", Country: "Italy"},
	{City: "Porto", Country: "Portugal"},
	{City: "Pattaya", Country: "Thailand"},
}

func newTestSuggestService() SuggestServiceInterface {
	repo := repositories.NewLocationRepositoryWithDirectory(testDirectory)
	return NewSuggestService(repo)
}

func TestMatchCitiesPrefixAndOrder(t *testing.T) {
	s := newTestSuggestService()

	matches, err := s.MatchCities(context.Background(), "pa", "")
	require.NoError(t, err)

	require.Len(t, matches, 3)
	assert.Equal(t, "Paris", matches[0].City)
	assert.Equal(t, "Palermo", matches[1].City)
	assert.Equal(t, "Pattaya", matches[2].City)
}

func TestMatchCitiesCaseInsensitive(t *testing.T) {
	s := newTestSuggestService()

	matches, err := s.MatchCities(context.Background(), "PA", "")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	matches, err = s.MatchCities(context.Background(), "rOm", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Rome", matches[0].City)
}

func TestMatchCitiesCountryScoped(t *testing.T) {
	s := newTestSuggestService()

	matches, err := s.MatchCities(context.Background(), "pa", "france")
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, domain_models.Location{City: "Paris", Country: "France"}, matches[0])
}

func TestMatchCitiesCountryContains(t *testing.T) {
	s := newTestSuggestService()

	// partial country text still scopes: "ranc" is contained in "France"
	matches, err := s.MatchCities(context.Background(), "pa", "ranc")
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "Paris", matches[0].City)
}

func TestMatchCitiesEmptyQuery(t *testing.T) {
	s := newTestSuggestService()

	matches, err := s.MatchCities(context.Background(), "   ", "France")
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.NotNil(t, matches)
}

func TestMatchCountriesDedup(t *testing.T) {
	s := newTestSuggestService()

	matches, err := s.MatchCountries(context.Background(), "fr")
	require.NoError(t, err)

	// two French cities, one suggestion
	assert.Equal(t, []string{"France"}, matches)
}

func TestMatchCountriesFirstSeenOrder(t *testing.T) {
	s := newTestSuggestService()

	matches, err := s.MatchCountries(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = s.MatchCountries(context.Background(), "i")
	require.NoError(t, err)
	assert.Equal(t, []string{"Italy"}, matches)
}

func TestMatchCitiesForCountry(t *testing.T) {
	s := newTestSuggestService()

	matches, err := s.MatchCitiesForCountry(context.Background(), "italy")
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "Palermo", matches[0].City)
	assert.Equal(t, "Rome", matches[1].City)
}

func TestMatchCitiesForCountryNoPartialMatch(t *testing.T) {
	s := newTestSuggestService()

	// exact match only, unlike the city-field scoping
	matches, err := s.MatchCitiesForCountry(context.Background(), "ital")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
