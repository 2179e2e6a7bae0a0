package response_models

// MapMarker is a ready-made point-of-interest marker definition for the
// external map widget: where to pin, what color, and what the popup says.
type MapMarker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Color string  `json:"color"`
	Popup string  `json:"popup"`
}

// TileLayerConfig tells the map widget which tile source to render and the
// attribution the source requires.
type TileLayerConfig struct {
	Style       string `json:"style"`
	URLTemplate string `json:"url_template"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"max_zoom"`
	DefaultZoom int    `json:"default_zoom"`
}
