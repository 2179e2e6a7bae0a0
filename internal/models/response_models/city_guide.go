package response_models

// Coordinates is a WGS84 lat/lng pair. The zero value {0,0} doubles as the
// "unknown position" sentinel for map consumers.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Unknown reports whether the pair is the unknown-position sentinel.
func (c Coordinates) Unknown() bool {
	return c.Lat == 0 && c.Lng == 0
}

type Weather struct {
	Temperature       string `json:"temperature"`
	Condition         string `json:"condition"`
	PackingSuggestion string `json:"packingSuggestion"`
}

type Attraction struct {
	Name        string      `json:"name"`
	Benefit     string      `json:"benefit"`
	Coordinates Coordinates `json:"coordinates"`
}

type ItineraryActivity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type ItineraryDay struct {
	Day        int                 `json:"day"`
	Theme      string              `json:"theme"`
	Activities []ItineraryActivity `json:"activities"`
}

type LocalTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
}

// CityGuide is the merged result of one generation: the structured content
// plus the hero image and gallery. It is immutable once built; a new
// submission replaces it wholesale. The slice fields are never nil after
// the merge step, and Coordinates falls back to the {0,0} sentinel.
type CityGuide struct {
	City         string         `json:"city"`
	Country      string         `json:"country"`
	Coordinates  Coordinates    `json:"coordinates"`
	Introduction string         `json:"introduction"`
	Weather      Weather        `json:"weather"`
	Attractions  []Attraction   `json:"attractions"`
	MapContext   string         `json:"mapContext"`
	Itinerary    []ItineraryDay `json:"itinerary"`
	LocalTips    []LocalTip     `json:"localTips"`
	ImageURL     string         `json:"imageUrl,omitempty"`
	Gallery      []string       `json:"gallery"`
	Markers      []MapMarker    `json:"markers"`
}
