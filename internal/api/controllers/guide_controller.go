package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type GuideController struct {
	guideService        services.GuideServiceInterface
	presentationService services.PresentationServiceInterface
}

func NewGuideController(
	guideService services.GuideServiceInterface,
	presentationService services.PresentationServiceInterface,
) *GuideController {
	return &GuideController{
		guideService:        guideService,
		presentationService: presentationService,
	}
}

// GenerateGuide godoc
// @Summary Generate a city guide without a session
// @Description Blocks until the structured content, hero image and gallery settle
// @Tags Guides
// @Accept json
// @Produce json
// @Param request body request_models.GuideRequest true "Destination and trip length"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /guides [post]
func (g *GuideController) GenerateGuide(c *gin.Context) {
	var req request_models.GuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "city and country are required")
		return
	}

	guide, err := g.guideService.GenerateGuide(c.Request.Context(), req.City, req.Country, req.Duration)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "Travel guide generated successfully")
}

// MapConfig godoc
// @Summary Tile-layer configuration for a map style
// @Tags Guides
// @Produce json
// @Param style query string false "street or satellite (default street)"
// @Success 200 {object} utils.APIResponse
// @Router /map/config [get]
func (g *GuideController) MapConfig(c *gin.Context) {
	style := c.DefaultQuery("style", "street")

	cfg, err := g.presentationService.TileLayer(style)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cfg, "Map configuration fetched")
}
