package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GenerateTripPlan godoc
// @Summary Generate a trip itinerary
// @Description Generate an AI itinerary for the given destinations, annotate it with driving distances, and store it for the authenticated user
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.TripGenerationRequest true "Destinations, category, days, members, budget range"
// @Success 200 {object} response_models.TripPlan
// @Failure 400 {object} utils.APIResponse
// @Failure 504 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/generate-trip-plan [post]
func (t *TripController) GenerateTripPlan(c *gin.Context) {
	var req request_models.TripGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Destinations) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Destinations are required")
		return
	}

	userID := c.GetString("user_id")

	plan, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip plan generated successfully")
}

// CalculateTripDistance godoc
// @Summary Annotate a trip plan with driving distances
// @Description Compute per-day and total driving distances for a caller-provided trip plan
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body response_models.TripPlan true "Trip plan to annotate"
// @Success 200 {object} response_models.TripDistanceInfo
// @Security BearerAuth
// @Router /trips/calculate-trip-distance [post]
func (t *TripController) CalculateTripDistance(c *gin.Context) {
	var plan response_models.TripPlan
	if err := c.ShouldBindJSON(&plan); err != nil || len(plan.Days) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "A trip plan with at least one day is required")
		return
	}

	info := t.tripService.CalculateTripDistance(c.Request.Context(), &plan)

	utils.RespondSuccess(c, info, "Trip distance calculated")
}

// GetTripById godoc
// @Summary Get trip by ID
// @Description Fetch a stored trip, its plan and distance annotation by trip ID
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/get-trip-by-id/{tripId} [get]
func (t *TripController) GetTripById(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripByTripID(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// GetTripsByUserId godoc
// @Summary Get trips by user ID
// @Description Fetch a paginated list of trips for the authenticated user
// @Tags Trip
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {array} []response_models.TripSummary
// @Security BearerAuth
// @Router /trips/get-trips-by-userid [get]
func (t *TripController) GetTripsByUserId(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "5")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userID := c.GetString("user_id")

	trips, err := t.tripService.GetTripsByUserID(c.Request.Context(), page, pageSize, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}
