package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateTripPlan(ctx context.Context, req request_models.TripGenerationRequest) (*response_models.TripPlan, error)
}

const (
	// Wall-clock budget per model call.
	generationTimeout = 20 * time.Second

	// Retries after the first attempt; backoff is backoffStep x attempt.
	generationRetries = 2
	backoffStep       = 2 * time.Second
)

type PlannerService struct {
	client  utils.PlannerClientInterface
	timeout time.Duration
	retries int
	sleep   func(time.Duration)
}

func NewPlannerService(client utils.PlannerClientInterface) PlannerServiceInterface {
	return &PlannerService{
		client:  client,
		timeout: generationTimeout,
		retries: generationRetries,
		sleep:   time.Sleep,
	}
}

func (p *PlannerService) GenerateTripPlan(ctx context.Context, req request_models.TripGenerationRequest) (*response_models.TripPlan, error) {
	// Fail fast before any external call.
	if len(req.Destinations) == 0 {
		return nil, utils.ErrInvalidInput
	}

	prompt := buildItineraryPrompt(req)

	raw, err := p.generateWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := utils.CleanModelJSON(raw)
	cleaned = utils.RepairTrailingBrace(cleaned)

	var plan response_models.TripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		log.Printf("itinerary parse failed: %v; raw response: %s", err, cleaned)
		return nil, &utils.MalformedResponseError{Reason: "response is not valid JSON", Raw: cleaned}
	}

	if len(plan.Days) == 0 {
		return nil, &utils.MalformedResponseError{Reason: "plan has no days", Raw: cleaned}
	}
	if len(plan.Days) != req.Days {
		return nil, &utils.MalformedResponseError{
			Reason: fmt.Sprintf("expected %d days, got %d", req.Days, len(plan.Days)),
			Raw:    cleaned,
		}
	}

	normalizeDays(plan.Days)
	plan.TripID = utils.NewTripID()
	return &plan, nil
}

func (p *PlannerService) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= p.retries; attempt++ {
		if attempt > 0 {
			p.sleep(backoffStep * time.Duration(attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		raw, err := p.client.GenerateItinerary(callCtx, prompt)
		cancel()
		if err == nil {
			return raw, nil
		}

		lastErr = err
		log.Printf("itinerary generation attempt %d/%d failed: %v", attempt+1, p.retries+1, err)
	}
	return "", fmt.Errorf("%w: %v", utils.ErrGenerationTimeout, lastErr)
}

func buildItineraryPrompt(req request_models.TripGenerationRequest) string {
	return fmt.Sprintf(`
Please generate a structured %d-day travel itinerary for %d people visiting %s.
Trip Category: %s
Budget Range: %s

Guidelines for the itinerary:
- Create a detailed day-by-day plan
- Include specific activities, times, and locations
- Suggest transportation and accommodation
- Estimate daily costs
- Focus on %s experiences

Response Requirements:
- Return ONLY a valid JSON object
- Use realistic, specific destination details
- Ensure activities match the destination and category type
- Format dates as YYYY-MM-DD
- Include an image URL for each activity (can be placeholder)

Output Format:
{
  "tripTitle": "Descriptive trip title",
  "days": [
    {
      "day": 1,
      "date": "2024-02-15",
      "activities": [
        {
          "time": "08:00 AM",
          "destination": "Specific location name",
          "description": "Detailed activity description",
          "image": "https://example.com/image.jpg"
        }
      ],
      "transportation": "Recommended transport method",
      "accommodation": "Hotel or lodging name",
      "estimatedCost": "$XXX"
    }
  ]
}`,
		req.Days, req.Members, strings.Join(req.Destinations, ", "),
		req.CategoryType, req.BudgetRange, req.CategoryType)
}

// normalizeDays renumbers days 1..n to match array position and fills
// blank or unparseable dates contiguously from the first day's date
// (today when the model gave none).
func normalizeDays(days []response_models.DayPlan) {
	start := time.Now()
	if t, ok := utils.ParseISODate(days[0].Date); ok {
		start = t
	}
	for i := range days {
		days[i].Day = i + 1
		if _, ok := utils.ParseISODate(days[i].Date); !ok {
			days[i].Date = utils.FormatISODate(start.AddDate(0, 0, i))
		}
	}
}
