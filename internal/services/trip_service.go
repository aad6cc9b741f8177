package services

import (
	"context"
	"encoding/json"
	"log"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, req request_models.TripGenerationRequest) (*response_models.TripPlan, error)
	CalculateTripDistance(ctx context.Context, plan *response_models.TripPlan) response_models.TripDistanceInfo
	GetTripByTripID(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error)
	GetTripsByUserID(ctx context.Context, page, pageSize int, userID string) ([]response_models.TripSummary, error)
}

type TripService struct {
	planner  PlannerServiceInterface
	distance DistanceServiceInterface
	tripRepo repositories.TripRepository
}

func NewTripService(
	planner PlannerServiceInterface,
	distance DistanceServiceInterface,
	tripRepo repositories.TripRepository,
) TripServiceInterface {
	return &TripService{
		planner:  planner,
		distance: distance,
		tripRepo: tripRepo,
	}
}

// CreateTrip runs the full pipeline: generation, distance annotation,
// persistence. Generation errors fail the request and nothing is stored;
// a failed distance annotation still yields a valid, stored trip.
func (s *TripService) CreateTrip(ctx context.Context, userID string, req request_models.TripGenerationRequest) (*response_models.TripPlan, error) {
	plan, err := s.planner.GenerateTripPlan(ctx, req)
	if err != nil {
		return nil, err
	}

	info := s.distance.AnnotateTripDistance(ctx, plan)
	plan.DistanceInfo = &info

	if err := s.saveTrip(ctx, userID, req, plan); err != nil {
		log.Printf("failed to persist trip %s: %v", plan.TripID, err)
		return nil, utils.ErrDatabaseError
	}

	return plan, nil
}

func (s *TripService) CalculateTripDistance(ctx context.Context, plan *response_models.TripPlan) response_models.TripDistanceInfo {
	return s.distance.AnnotateTripDistance(ctx, plan)
}

func (s *TripService) saveTrip(ctx context.Context, userID string, req request_models.TripGenerationRequest, plan *response_models.TripPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	distanceJSON, err := json.Marshal(plan.DistanceInfo)
	if err != nil {
		return err
	}

	return s.tripRepo.SaveTrip(ctx, &db_models.Trip{
		TripID:       plan.TripID,
		UserID:       userID,
		TripTitle:    plan.TripTitle,
		Destinations: req.Destinations,
		CategoryType: req.CategoryType,
		Days:         req.Days,
		Members:      req.Members,
		BudgetRange:  req.BudgetRange,
		PlanJSON:     string(planJSON),
		DistanceJSON: string(distanceJSON),
	})
}

func (s *TripService) GetTripByTripID(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	var plan response_models.TripPlan
	if err := json.Unmarshal([]byte(trip.PlanJSON), &plan); err != nil {
		log.Printf("stored plan %s is unreadable: %v", trip.TripID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripDetailResponse{
		TripID:       trip.TripID,
		UserID:       trip.UserID,
		Destinations: trip.Destinations,
		CategoryType: trip.CategoryType,
		Members:      trip.Members,
		BudgetRange:  trip.BudgetRange,
		Plan:         plan,
		DistanceInfo: plan.DistanceInfo,
		CreatedAt:    trip.CreatedAt,
	}, nil
}

func (s *TripService) GetTripsByUserID(ctx context.Context, page, pageSize int, userID string) ([]response_models.TripSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := s.tripRepo.ListTripsByUserID(ctx, page, pageSize, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.TripSummary{
			TripID:       trip.TripID,
			TripTitle:    trip.TripTitle,
			Destinations: trip.Destinations,
			Days:         trip.Days,
			CreatedAt:    trip.CreatedAt,
		})
	}
	return out, nil
}
