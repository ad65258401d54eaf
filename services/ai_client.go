package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/allanalmatech/ummahMatch/models"
)

// AIClient talks to the generation flow server over HTTP. Each flow is
// a POST of a JSON input returning a JSON output.
type AIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewAIClient builds a client for the flow server at baseURL.
func NewAIClient(baseURL string) *AIClient {
	return &AIClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// SuggestMatches ranks the candidates against the current user.
func (c *AIClient) SuggestMatches(ctx context.Context, in models.MatchmakingInput) (*models.MatchmakingOutput, error) {
	var out models.MatchmakingOutput
	if err := c.post(ctx, "/flows/aiMatchmaking", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Icebreakers generates conversation openers for a pair.
func (c *AIClient) Icebreakers(ctx context.Context, in models.IcebreakerInput) (*models.IcebreakerOutput, error) {
	var out models.IcebreakerOutput
	if err := c.post(ctx, "/flows/suggestIcebreakers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileSuggestions generates profile description drafts from
// lifestyle attributes.
func (c *AIClient) ProfileSuggestions(ctx context.Context, in models.ProfilePromptInput) (*models.ProfilePromptOutput, error) {
	var out models.ProfilePromptOutput
	if err := c.post(ctx, "/flows/generateProfileDescriptions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransformPhoto generates a styled version of a photo.
func (c *AIClient) TransformPhoto(ctx context.Context, in models.PhotoTransformInput) (*models.PhotoTransformOutput, error) {
	var out models.PhotoTransformOutput
	if err := c.post(ctx, "/flows/transformPhoto", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AIClient) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("generation request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("generation request %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
