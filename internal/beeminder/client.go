package beeminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/beeline/internal/domain"
)

// DefaultBaseURL is the production Beeminder v1 API root.
const DefaultBaseURL = "https://www.beeminder.com/api/v1"

// Client provides access to the Beeminder REST API.
type Client interface {
	// GetGoals fetches all of the user's active goals.
	GetGoals(ctx context.Context) ([]domain.GoalTelemetry, error)

	// GetGoal fetches a single goal's telemetry snapshot.
	GetGoal(ctx context.Context, slug string) (*domain.GoalTelemetry, error)

	// GetDatapoints lists all datapoints recorded on a goal.
	GetDatapoints(ctx context.Context, slug string) ([]Datapoint, error)

	// CreateDatapoint submits a new progress entry.
	CreateDatapoint(ctx context.Context, slug string, dp NewDatapoint) (*Datapoint, error)

	// RefreshGoal asks the tracker to recompute a goal's graph and data.
	RefreshGoal(ctx context.Context, slug string) error

	// CheckAuth verifies the configured credentials.
	CheckAuth(ctx context.Context) error
}

// Config holds connection settings for the Beeminder API.
type Config struct {
	BaseURL   string
	Username  string
	AuthToken string
	TimeoutMs int
}

// DefaultConfig returns a Config for the production API with the given
// credentials.
func DefaultConfig(username, authToken string) Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Username:  username,
		AuthToken: authToken,
		TimeoutMs: 15000,
	}
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client backed by the HTTP API.
func NewClient(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 15000
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
	}
}

func (c *httpClient) GetGoals(ctx context.Context) ([]domain.GoalTelemetry, error) {
	path := fmt.Sprintf("users/%s/goals.json", url.PathEscape(c.cfg.Username))
	var payloads []goalPayload
	if err := c.get(ctx, path, nil, &payloads); err != nil {
		return nil, err
	}

	goals := make([]domain.GoalTelemetry, 0, len(payloads))
	for _, p := range payloads {
		goals = append(goals, p.telemetry())
	}
	return goals, nil
}

func (c *httpClient) GetGoal(ctx context.Context, slug string) (*domain.GoalTelemetry, error) {
	path := fmt.Sprintf("users/%s/goals/%s.json", url.PathEscape(c.cfg.Username), url.PathEscape(slug))
	var payload goalPayload
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	t := payload.telemetry()
	return &t, nil
}

func (c *httpClient) GetDatapoints(ctx context.Context, slug string) ([]Datapoint, error) {
	path := fmt.Sprintf("users/%s/goals/%s/datapoints.json", url.PathEscape(c.cfg.Username), url.PathEscape(slug))
	var points []Datapoint
	if err := c.get(ctx, path, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *httpClient) CreateDatapoint(ctx context.Context, slug string, dp NewDatapoint) (*Datapoint, error) {
	path := fmt.Sprintf("users/%s/goals/%s/datapoints.json", url.PathEscape(c.cfg.Username), url.PathEscape(slug))

	form := url.Values{}
	form.Set("auth_token", c.cfg.AuthToken)
	form.Set("value", strconv.FormatFloat(dp.Value, 'f', -1, 64))
	form.Set("comment", dp.Comment)
	if dp.Timestamp > 0 {
		form.Set("timestamp", strconv.FormatInt(dp.Timestamp, 10))
	}
	if dp.RequestID != "" {
		form.Set("requestid", dp.RequestID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/"+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var created Datapoint
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *httpClient) RefreshGoal(ctx context.Context, slug string) error {
	path := fmt.Sprintf("users/%s/goals/%s/refresh_graph.json", url.PathEscape(c.cfg.Username), url.PathEscape(slug))
	return c.get(ctx, path, nil, nil)
}

func (c *httpClient) CheckAuth(ctx context.Context) error {
	path := fmt.Sprintf("users/%s.json", url.PathEscape(c.cfg.Username))
	return c.get(ctx, path, nil, nil)
}

func (c *httpClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("auth_token", c.cfg.AuthToken)

	fullURL := c.cfg.BaseURL + "/" + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, out)
}

func (c *httpClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrGoalNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("beeminder returned status %d: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
