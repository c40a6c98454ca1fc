package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const linearEndpoint = "https://api.linear.app/graphql"

// LinearClient fetches tasks from Linear's GraphQL API.
type LinearClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewLinearClient creates a client authenticated with apiKey.
func NewLinearClient(apiKey string) *LinearClient {
	return &LinearClient{
		apiKey:   apiKey,
		endpoint: linearEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type linearIssue struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	BranchName string `json:"branchName"`
}

type linearResponse struct {
	Data struct {
		Issue *linearIssue `json:"issue"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

const issueQuery = `query($id: String!) {
  issue(id: $id) { id identifier title url branchName }
}`

func (c *LinearClient) fetchIssue(ctx context.Context, id string) (*linearIssue, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     issueQuery,
		"variables": map[string]string{"id": id},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linear request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("linear returned %s", resp.Status)
	}

	var parsed linearResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode linear response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("linear error: %s", parsed.Errors[0].Message)
	}
	if parsed.Data.Issue == nil {
		return nil, fmt.Errorf("task %s not found", id)
	}
	return parsed.Data.Issue, nil
}

// GetTask fetches a task by id or key.
func (c *LinearClient) GetTask(ctx context.Context, id string) (*Task, error) {
	issue, err := c.fetchIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Task{
		ID:    issue.ID,
		Key:   issue.Identifier,
		Title: issue.Title,
		URL:   issue.URL,
	}, nil
}

// BranchName returns Linear's suggested branch name for a task.
func (c *LinearClient) BranchName(ctx context.Context, id string) (string, error) {
	issue, err := c.fetchIssue(ctx, id)
	if err != nil {
		return "", err
	}
	return issue.BranchName, nil
}
