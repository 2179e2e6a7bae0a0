package repositories

import (
	"context"

	"roamio/internal/models/domain_models"
)

type LocationRepository interface {
	ListAll(ctx context.Context) ([]domain_models.Location, error)
}

type locationRepository struct {
	directory []domain_models.Location
}

// NewLocationRepository serves the built-in destination directory.
func NewLocationRepository() LocationRepository {
	return &locationRepository{directory: destinationDirectory}
}

// NewLocationRepositoryWithDirectory serves a caller-provided directory.
// Used by tests that need a small fixed fixture.
func NewLocationRepositoryWithDirectory(directory []domain_models.Location) LocationRepository {
	return &locationRepository{directory: directory}
}

func (l *locationRepository) ListAll(ctx context.Context) ([]domain_models.Location, error) {
	// Hand out a copy so callers can never reorder the fixture.
	out := make([]domain_models.Location, len(l.directory))
	copy(out, l.directory)
	return out, nil
}
