package directory_fx

import (
	"go.uber.org/fx"

	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	NewLocationRepo, NewSuggestService)

func NewLocationRepo() repositories.LocationRepository {
	return repositories.NewLocationRepository()
}

func NewSuggestService(repo repositories.LocationRepository) services.SuggestServiceInterface {
	return services.NewSuggestService(repo)
}
