package guide_fx

import (
	"go.uber.org/fx"

	"roamio/internal/infra"
	"roamio/internal/services"
)

var Module = fx.Provide(
	infra.InitContentClient,
	infra.InitImageClient,
	NewGuideService,
)

func NewGuideService(content services.ContentClientInterface, images services.ImageClientInterface) services.GuideServiceInterface {
	return services.NewGuideService(content, images)
}
