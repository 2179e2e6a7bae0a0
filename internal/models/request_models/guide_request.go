package request_models

// GuideRequest is the stateless generate-guide payload. Duration stays a
// string on the wire; unparseable values fall back to a one-day trip.
type GuideRequest struct {
	City     string `json:"city" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Duration string `json:"duration"`
}
