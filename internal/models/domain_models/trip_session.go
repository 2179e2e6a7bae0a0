package domain_models

import "roamio/internal/models/response_models"

// FormField names the three editable guide-request fields.
type FormField string

const (
	FieldCity     FormField = "city"
	FieldCountry  FormField = "country"
	FieldDuration FormField = "duration"
)

func (f FormField) Valid() bool {
	switch f {
	case FieldCity, FieldCountry, FieldDuration:
		return true
	}
	return false
}

// SessionStatus tracks where a session is in the generate cycle.
type SessionStatus string

const (
	StatusIdle       SessionStatus = "idle"
	StatusGenerating SessionStatus = "generating"
	StatusReady      SessionStatus = "ready"
	StatusFailed     SessionStatus = "failed"
)

// Tab names the result view sections.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabPhotos      Tab = "photos"
	TabAttractions Tab = "attractions"
	TabMap         Tab = "map"
	TabItinerary   Tab = "itinerary"
	TabTips        Tab = "tips"
)

func (t Tab) Valid() bool {
	switch t {
	case TabOverview, TabPhotos, TabAttractions, TabMap, TabItinerary, TabTips:
		return true
	}
	return false
}

// MapStyle selects the tile-layer source for the map surface.
type MapStyle string

const (
	StyleStreet    MapStyle = "street"
	StyleSatellite MapStyle = "satellite"
)

// FormState holds the raw field values as typed by the client. Values stay
// strings until submit; duration is only parsed at validation time.
type FormState struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	Duration string `json:"duration"`
}

// TripSession is the whole per-client application state: the form, the
// in-flight/finished generation, and the presentation state of the result
// view. It is owned by the session store and must only be mutated through
// the store's Update so concurrent generation completions stay serialized.
type TripSession struct {
	ID string `json:"id"`

	// form
	Form               FormState  `json:"form"`
	ActiveField        FormField  `json:"active_field,omitempty"`
	CityDropdownOpen   bool       `json:"city_dropdown_open"`
	CountryDropdown    bool       `json:"country_dropdown_open"`
	CitySuggestions    []Location `json:"city_suggestions"`
	CountrySuggestions []string   `json:"country_suggestions"`

	// generation
	Status       SessionStatus              `json:"status"`
	Guide        *response_models.CityGuide `json:"guide,omitempty"`
	ErrorMessage string                     `json:"error_message,omitempty"`

	// presentation
	ActiveTab   Tab                          `json:"active_tab"`
	MapStyle    MapStyle                     `json:"map_style"`
	MapReady    bool                         `json:"map_ready"`
	PendingJump *response_models.Coordinates `json:"pending_jump,omitempty"`
	MapCenter   *response_models.Coordinates `json:"map_center,omitempty"`
}

// NewTripSession returns a session in its initial state.
func NewTripSession(id string) *TripSession {
	return &TripSession{
		ID:                 id,
		Status:             StatusIdle,
		ActiveTab:          TabOverview,
		MapStyle:           StyleStreet,
		CitySuggestions:    []Location{},
		CountrySuggestions: []string{},
	}
}

// ResetToForm returns the session to its initial state, dropping the guide
// and all presentation state. The ID survives.
func (s *TripSession) ResetToForm() {
	fresh := NewTripSession(s.ID)
	*s = *fresh
}
