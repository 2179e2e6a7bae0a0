package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/services"
	"roamio/pkg/utils"
)

type SuggestController struct {
	suggestService services.SuggestServiceInterface
}

func NewSuggestController(suggestService services.SuggestServiceInterface) *SuggestController {
	return &SuggestController{
		suggestService: suggestService,
	}
}

// MatchCities godoc
// @Summary Suggest cities for a partial city name
// @Description Prefix-match cities from the destination directory, optionally scoped to the current country field value
// @Tags Suggestions
// @Produce json
// @Param city query string true "Partial city name"
// @Param country query string false "Current country field value"
// @Success 200 {object} utils.APIResponse
// @Router /suggest/cities [get]
func (s *SuggestController) MatchCities(c *gin.Context) {
	city := c.Query("city")
	country := c.Query("country")

	matches, err := s.suggestService.MatchCities(c.Request.Context(), city, country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "City suggestions fetched successfully")
}

// MatchCountries godoc
// @Summary Suggest countries for a partial country name
// @Tags Suggestions
// @Produce json
// @Param country query string true "Partial country name"
// @Success 200 {object} utils.APIResponse
// @Router /suggest/countries [get]
func (s *SuggestController) MatchCountries(c *gin.Context) {
	country := c.Query("country")

	matches, err := s.suggestService.MatchCountries(c.Request.Context(), country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Country suggestions fetched successfully")
}

// CitiesForCountry godoc
// @Summary List every directory city of one country
// @Description Exact case-insensitive country match; backs the city-field focus behavior when a country is already chosen
// @Tags Suggestions
// @Produce json
// @Param country query string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Router /suggest/cities-for-country [get]
func (s *SuggestController) CitiesForCountry(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		utils.RespondError(c, http.StatusBadRequest, "country is required")
		return
	}

	matches, err := s.suggestService.MatchCitiesForCountry(c.Request.Context(), country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Cities fetched successfully")
}
