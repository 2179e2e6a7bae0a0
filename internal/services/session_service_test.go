package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/domain_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	mem "roamio/pkg/memcache"
	"roamio/pkg/utils"
)

// fakeGuideService lets tests control when and how generation settles.
type fakeGuideService struct {
	mu      sync.Mutex
	guide   *response_models.CityGuide
	err     error
	calls   int
	release chan struct{} // when set, GenerateGuide blocks until closed
}

func (f *fakeGuideService) GenerateGuide(ctx context.Context, city, country, duration string) (*response_models.CityGuide, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	f.mu.Unlock()
	if release != nil {
		<-release
	}
	return f.guide, f.err
}

func (f *fakeGuideService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestSessionService(guide *fakeGuideService) (SessionServiceInterface, mem.TripSessionStore) {
	store := mem.NewTripSessions()
	suggest := NewSuggestService(repositories.NewLocationRepositoryWithDirectory(testDirectory))
	return NewSessionService(store, suggest, guide, time.Minute), store
}

func createSession(t *testing.T, s SessionServiceInterface) string {
	t.Helper()
	session, err := s.CreateSession(context.Background())
	require.NoError(t, err)
	return session.ID
}

func TestCreateSessionInitialState(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	session, err := s.CreateSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain_models.StatusIdle, session.Status)
	assert.Equal(t, domain_models.TabOverview, session.ActiveTab)
	assert.Equal(t, domain_models.StyleStreet, session.MapStyle)
	assert.Empty(t, session.Form.City)
}

func TestEditCityOpensDropdown(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	id := createSession(t, s)

	session, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "city", Value: "pa",
	})
	require.NoError(t, err)

	assert.Equal(t, "pa", session.Form.City)
	assert.True(t, session.CityDropdownOpen)
	require.Len(t, session.CitySuggestions, 3)
}

func TestEditCityToEmptyClosesDropdown(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	id := createSession(t, s)

	_, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "city", Value: "pa",
	})
	require.NoError(t, err)

	session, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "city", Value: "",
	})
	require.NoError(t, err)

	assert.False(t, session.CityDropdownOpen)
	assert.Empty(t, session.CitySuggestions)
}

func TestFocusEmptyCityWithCountrySet(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	id := createSession(t, s)

	_, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "country", Value: "Italy",
	})
	require.NoError(t, err)

	session, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventFocus, Field: "city",
	})
	require.NoError(t, err)

	assert.Equal(t, domain_models.FieldCity, session.ActiveField)
	assert.True(t, session.CityDropdownOpen)
	require.Len(t, session.CitySuggestions, 2) // all Italian cities, no typing
}

func TestBlurClearsActiveFieldOnly(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	id := createSession(t, s)

	_, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "city", Value: "pa",
	})
	require.NoError(t, err)
	_, err = s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventFocus, Field: "city",
	})
	require.NoError(t, err)

	session, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventBlur,
	})
	require.NoError(t, err)

	assert.Empty(t, string(session.ActiveField))
	// blur must NOT close the dropdown; a pending suggestion click needs it
	assert.True(t, session.CityDropdownOpen)
}

func TestOutsideClickClosesDropdown(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	id := createSession(t, s)

	_, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "city", Value: "pa",
	})
	require.NoError(t, err)

	session, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventOutside, Field: "city",
	})
	require.NoError(t, err)
	assert.False(t, session.CityDropdownOpen)
}

func TestSelectCitySetsBothFields(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	id := createSession(t, s)

	_, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "city", Value: "pa",
	})
	require.NoError(t, err)

	sel := request_models.SelectSuggestionRequest{City: "Paris", Country: "France"}
	session, err := s.SelectSuggestion(context.Background(), id, sel)
	require.NoError(t, err)

	assert.Equal(t, "Paris", session.Form.City)
	assert.Equal(t, "France", session.Form.Country)
	assert.False(t, session.CityDropdownOpen)
	assert.False(t, session.CountryDropdown)

	// idempotent on repeated selection
	session, err = s.SelectSuggestion(context.Background(), id, sel)
	require.NoError(t, err)
	assert.Equal(t, "Paris", session.Form.City)
	assert.Equal(t, "France", session.Form.Country)
}

func TestSelectCountrySetsCountryOnly(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	id := createSession(t, s)

	session, err := s.SelectSuggestion(context.Background(), id, request_models.SelectSuggestionRequest{Country: "Italy"})
	require.NoError(t, err)

	assert.Empty(t, session.Form.City)
	assert.Equal(t, "Italy", session.Form.Country)
	assert.False(t, session.CountryDropdown)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	guide := &fakeGuideService{}
	s, _ := newTestSessionService(guide)
	id := createSession(t, s)

	_, err := s.Submit(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "city", Value: "Rome",
	})
	require.NoError(t, err)

	_, err = s.Submit(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	// the orchestrator must never have been touched
	assert.Equal(t, 0, guide.callCount())
}

func TestSubmitRejectsOutOfRangeDuration(t *testing.T) {
	guide := &fakeGuideService{}
	s, _ := newTestSessionService(guide)
	id := createSession(t, s)

	fillValidForm(t, s, id)
	_, err := s.ApplyFormEvent(context.Background(), id, request_models.FormEventRequest{
		Type: request_models.FormEventEdit, Field: "duration", Value: "15",
	})
	require.NoError(t, err)

	_, err = s.Submit(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Equal(t, 0, guide.callCount())
}

func fillValidForm(t *testing.T, s SessionServiceInterface, id string) {
	t.Helper()
	_, err := s.SelectSuggestion(context.Background(), id, request_models.SelectSuggestionRequest{City: "Rome", Country: "Italy"})
	require.NoError(t, err)
}

func TestSubmitGeneratesGuide(t *testing.T) {
	guide := &fakeGuideService{guide: &response_models.CityGuide{City: "Rome", Country: "Italy"}}
	s, store := newTestSessionService(guide)
	id := createSession(t, s)
	fillValidForm(t, s, id)

	session, err := s.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain_models.StatusGenerating, session.Status)
	assert.False(t, session.CityDropdownOpen)
	assert.Empty(t, string(session.ActiveField))

	require.Eventually(t, func() bool {
		got := store.Get(id)
		return got != nil && got.Status == domain_models.StatusReady
	}, 2*time.Second, 10*time.Millisecond)

	got := store.Get(id)
	require.NotNil(t, got.Guide)
	assert.Equal(t, "Rome", got.Guide.City)
	assert.Equal(t, domain_models.TabOverview, got.ActiveTab)
}

func TestSubmitFailureSetsGenericMessage(t *testing.T) {
	guide := &fakeGuideService{err: utils.ErrGuideGeneration}
	s, store := newTestSessionService(guide)
	id := createSession(t, s)
	fillValidForm(t, s, id)

	_, err := s.Submit(context.Background(), id)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got := store.Get(id)
		return got != nil && got.Status == domain_models.StatusFailed
	}, 2*time.Second, 10*time.Millisecond)

	got := store.Get(id)
	assert.Nil(t, got.Guide)
	assert.Equal(t, "Failed to generate travel guide. Please try again.", got.ErrorMessage)
}

func TestSecondSubmitWhileInFlightRejected(t *testing.T) {
	release := make(chan struct{})
	guide := &fakeGuideService{guide: &response_models.CityGuide{}, release: release}
	s, _ := newTestSessionService(guide)
	id := createSession(t, s)
	fillValidForm(t, s, id)

	_, err := s.Submit(context.Background(), id)
	require.NoError(t, err)

	_, err = s.Submit(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrGenerationInFlight)

	close(release)
	require.Eventually(t, func() bool {
		return guide.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSubmitUnknownSession(t *testing.T) {
	s, _ := newTestSessionService(&fakeGuideService{})
	_, err := s.Submit(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
