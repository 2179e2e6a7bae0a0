package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type SessionController struct {
	sessionService      services.SessionServiceInterface
	presentationService services.PresentationServiceInterface
}

func NewSessionController(
	sessionService services.SessionServiceInterface,
	presentationService services.PresentationServiceInterface,
) *SessionController {
	return &SessionController{
		sessionService:      sessionService,
		presentationService: presentationService,
	}
}

// CreateSession godoc
// @Summary Open a new trip session
// @Tags Sessions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /sessions [post]
func (s *SessionController) CreateSession(c *gin.Context) {
	session, err := s.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Session created")
}

// GetSession godoc
// @Summary Fetch the current session snapshot
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id} [get]
func (s *SessionController) GetSession(c *gin.Context) {
	session, err := s.sessionService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Session fetched")
}

// ApplyFormEvent godoc
// @Summary Apply one form interaction (edit, focus, blur, outside click)
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id}/form/events [post]
func (s *SessionController) ApplyFormEvent(c *gin.Context) {
	var req request_models.FormEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := s.sessionService.ApplyFormEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Event applied")
}

// SelectSuggestion godoc
// @Summary Apply a picked autocomplete suggestion
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id}/form/select [post]
func (s *SessionController) SelectSuggestion(c *gin.Context) {
	var req request_models.SelectSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "country is required")
		return
	}

	session, err := s.sessionService.SelectSuggestion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Suggestion applied")
}

// Submit godoc
// @Summary Submit the form and start guide generation
// @Description Generation runs in the background; poll the session until its status leaves "generating"
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 202 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /sessions/{id}/submit [post]
func (s *SessionController) Submit(c *gin.Context) {
	session, err := s.sessionService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondAccepted(c, session, "Guide generation started")
}

// SelectTab godoc
// @Summary Switch the active result tab
// @Tags Presentation
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id}/tab [post]
func (s *SessionController) SelectTab(c *gin.Context) {
	var req request_models.SelectTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tab is required")
		return
	}

	session, err := s.presentationService.SelectTab(c.Request.Context(), c.Param("id"), req.Tab)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Tab selected")
}

// ToggleMapStyle godoc
// @Summary Flip between street and satellite tiles
// @Tags Presentation
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id}/map/style [post]
func (s *SessionController) ToggleMapStyle(c *gin.Context) {
	session, err := s.presentationService.ToggleMapStyle(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Map style toggled")
}

// JumpToAttraction godoc
// @Summary Center the map on an attraction
// @Description Switches to the map tab; the jump is parked until the map surface reports ready
// @Tags Presentation
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id}/map/jump [post]
func (s *SessionController) JumpToAttraction(c *gin.Context) {
	var req request_models.MapJumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	target := response_models.Coordinates{Lat: req.Lat, Lng: req.Lng}
	session, err := s.presentationService.JumpToAttraction(c.Request.Context(), c.Param("id"), target)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Jump recorded")
}

// MapSurfaceReady godoc
// @Summary Report that the map surface has mounted
// @Tags Presentation
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id}/map/ready [post]
func (s *SessionController) MapSurfaceReady(c *gin.Context) {
	session, err := s.presentationService.MapSurfaceReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Map surface ready")
}

// Reset godoc
// @Summary Drop the guide and return to the empty form
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /sessions/{id}/reset [post]
func (s *SessionController) Reset(c *gin.Context) {
	session, err := s.presentationService.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Session reset")
}
