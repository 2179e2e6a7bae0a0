package domain_models

// Location is one entry of the curated destination directory: a city
// paired with its country. The directory is static reference data used
// only for suggestion matching, so there is no ID and no lifecycle.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}
