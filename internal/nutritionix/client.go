// Package nutritionix implements domain.ExerciseEstimator against the
// Nutritionix natural-language exercise endpoint.
package nutritionix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mkarlen/fitlog/internal/domain"
)

// DefaultBaseURL is the production Nutritionix API host.
const DefaultBaseURL = "https://trackapi.nutritionix.com"

const defaultTimeout = 15 * time.Second

// Client calls the Nutritionix /v2/natural/exercise endpoint. The service
// identifies callers by app id and key headers; both come from environment
// configuration and are verified at startup.
//
// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
}

// New creates a Client for the given base URL and credentials.
func New(baseURL, appID, appKey string) *Client {
	return &Client{
		baseURL: baseURL,
		appID:   appID,
		appKey:  appKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// exerciseRequest is the request body for /v2/natural/exercise.
type exerciseRequest struct {
	Query    string  `json:"query"`
	Gender   string  `json:"gender"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Age      int     `json:"age"`
}

// exerciseResponse is the response from /v2/natural/exercise.
type exerciseResponse struct {
	Exercises []struct {
		Name        string  `json:"name"`
		DurationMin float64 `json:"duration_min"`
		NFCalories  float64 `json:"nf_calories"`
	} `json:"exercises"`
}

// Estimate sends the free-text description and profile to Nutritionix and
// returns the structured exercise entries it identified. Transport failures,
// non-2xx statuses, and undecodable bodies all surface as
// domain.ErrEstimation.
func (c *Client) Estimate(ctx context.Context, query string, profile domain.EstimationProfile) ([]domain.ExerciseEstimate, error) {
	body, err := json.Marshal(exerciseRequest{
		Query:    query,
		Gender:   profile.Gender,
		WeightKg: profile.WeightKg,
		HeightCm: profile.HeightCm,
		Age:      profile.Age,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/natural/exercise", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEstimation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the error message; Nutritionix
		// returns a short JSON explanation on failure.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrEstimation, resp.StatusCode, msg)
	}

	var decoded exerciseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrEstimation, err)
	}

	estimates := make([]domain.ExerciseEstimate, 0, len(decoded.Exercises))
	for _, e := range decoded.Exercises {
		estimates = append(estimates, domain.ExerciseEstimate{
			Name:        e.Name,
			DurationMin: e.DurationMin,
			Calories:    e.NFCalories,
		})
	}
	return estimates, nil
}

var _ domain.ExerciseEstimator = (*Client)(nil)
