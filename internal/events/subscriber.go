package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPSubscriber registers sessions against a running event forwarder over
// its local HTTP control endpoint.
type HTTPSubscriber struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSubscriber creates a subscriber talking to the forwarder at baseURL.
func NewHTTPSubscriber(baseURL string) *HTTPSubscriber {
	return &HTTPSubscriber{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type subscriptionRequest struct {
	SessionID string `json:"session_id"`
	PRNumbers []int  `json:"pr_numbers"`
}

func (s *HTTPSubscriber) Subscribe(ctx context.Context, sessionID string, prNumbers []int) error {
	return s.send(ctx, http.MethodPost, sessionID, prNumbers)
}

func (s *HTTPSubscriber) Unsubscribe(ctx context.Context, sessionID string, prNumbers []int) error {
	return s.send(ctx, http.MethodDelete, sessionID, prNumbers)
}

func (s *HTTPSubscriber) send(ctx context.Context, method, sessionID string, prNumbers []int) error {
	body, err := json.Marshal(subscriptionRequest{SessionID: sessionID, PRNumbers: prNumbers})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/subscriptions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("event forwarder unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("event forwarder returned %s", resp.Status)
	}
	return nil
}
