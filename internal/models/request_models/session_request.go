package request_models

// FormEventRequest is one form interaction: an edit keystroke, a focus or
// blur, or a pointer-down outside a field's dropdown wrapper.
type FormEventRequest struct {
	Type  string `json:"type" binding:"required"` // edit | focus | blur | outside
	Field string `json:"field"`
	Value string `json:"value"`
}

const (
	FormEventEdit    = "edit"
	FormEventFocus   = "focus"
	FormEventBlur    = "blur"
	FormEventOutside = "outside"
)

// SelectSuggestionRequest applies a picked suggestion. A city pick carries
// both halves of the directory pair; a country pick carries only the country.
type SelectSuggestionRequest struct {
	City    string `json:"city"`
	Country string `json:"country" binding:"required"`
}

// SelectTabRequest switches the active result tab.
type SelectTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// MapJumpRequest asks the map surface to re-center on an attraction.
type MapJumpRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
