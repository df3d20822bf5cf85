package rootly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Rootly REST API endpoint
	DefaultBaseURL = "https://api.rootly.com/v1"
	// DefaultPageSize is the page size used when listing users
	DefaultPageSize = 100

	jsonAPIContentType = "application/vnd.api+json"
	maxPages           = 50
	maxErrorBody       = 4096
	unknownOverrideID  = types.OverrideID("unknown")
)

// Client talks to the Rootly REST API
type Client struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ interfaces.Directory = (*Client)(nil)

// Option is a functional option for Client configuration
type Option func(*Client)

// WithBaseURL overrides the API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit paces outbound requests with a token bucket
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithPageSize sets the page size used by ListUsers
func WithPageSize(size int) Option {
	return func(c *Client) {
		c.pageSize = size
	}
}

// New creates a Rootly client. A missing API key is reported when a call is made.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		pageSize:   DefaultPageSize,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(5), 5),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListUsers fetches every user, following pagination
func (c *Client) ListUsers(ctx context.Context) ([]*model.DirectoryUser, error) {
	logger := ctxlog.From(ctx)
	logger.Debug("Fetching Rootly users from API")

	var users []*model.DirectoryUser
	page := 1
	for i := 0; i < maxPages; i++ {
		query := url.Values{}
		query.Set("page[number]", strconv.Itoa(page))
		query.Set("page[size]", strconv.Itoa(c.pageSize))

		var resp userListResponse
		if err := c.do(ctx, http.MethodGet, "/users", query, nil, &resp); err != nil {
			return nil, goerr.Wrap(err, "failed to list Rootly users", goerr.V("page", page))
		}

		for _, u := range resp.Data {
			users = append(users, toDirectoryUser(u))
		}

		if resp.Meta.NextPage == nil || *resp.Meta.NextPage <= page || len(resp.Data) == 0 {
			break
		}
		page = *resp.Meta.NextPage
	}

	logger.Debug("Fetched Rootly users", "count", len(users))
	return users, nil
}

// FindUserByEmail looks up a user whose email equals the given one, ignoring
// case. It returns nil when no user matches.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*model.DirectoryUser, error) {
	query := url.Values{}
	query.Set("filter[email]", email)

	var resp userListResponse
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to search Rootly user by email", goerr.V("email", email))
	}

	for _, u := range resp.Data {
		if strings.EqualFold(u.Attributes.Email, email) {
			return toDirectoryUser(u), nil
		}
	}
	return nil, nil
}

// CreateOverride creates an override shift on the schedule
func (c *Client) CreateOverride(ctx context.Context, userID types.DirectoryUserID, scheduleID types.ScheduleID, start, end time.Time) (types.OverrideID, error) {
	if scheduleID == "" {
		return "", goerr.New("Rootly schedule ID is not configured", goerr.T(model.ErrTagConfigurationMissing))
	}

	numericID, err := strconv.Atoi(userID.String())
	if err != nil {
		return "", goerr.Wrap(err, "Rootly user ID is not numeric",
			goerr.V("user_id", userID),
			goerr.T(model.ErrTagBadRequest))
	}

	body := createShiftRequest{
		Data: shiftResource{
			Type: "shifts",
			Attributes: shiftAttributes{
				UserID:   numericID,
				StartsAt: start.UTC().Format(time.RFC3339),
				EndsAt:   end.UTC().Format(time.RFC3339),
			},
		},
	}

	var resp createShiftResponse
	path := fmt.Sprintf("/schedules/%s/override_shifts", url.PathEscape(scheduleID.String()))
	if err := c.do(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return "", goerr.Wrap(err, "failed to create Rootly override",
			goerr.V("user_id", userID),
			goerr.V("schedule_id", scheduleID))
	}

	if resp.Data == nil || resp.Data.ID == "" {
		return unknownOverrideID, nil
	}
	return types.OverrideID(resp.Data.ID), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody, out any) error {
	if c.apiKey == "" {
		return goerr.New("Rootly API key is not configured", goerr.T(model.ErrTagConfigurationMissing))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "rate limiter wait aborted")
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("endpoint", endpoint))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", jsonAPIContentType)
	if reqBody != nil {
		req.Header.Set("Content-Type", jsonAPIContentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to call Rootly API",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.T(model.ErrTagUpstream))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return goerr.New(fmt.Sprintf("Rootly API returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(errBody)),
			goerr.T(model.ErrTagUpstream))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return goerr.Wrap(err, "failed to decode Rootly response",
			goerr.V("path", path),
			goerr.T(model.ErrTagUpstream))
	}
	return nil
}

func toDirectoryUser(u userResource) *model.DirectoryUser {
	name := u.Attributes.Name
	if name == "" {
		name = u.Attributes.FullName
	}
	return &model.DirectoryUser{
		ID:    types.DirectoryUserID(u.ID),
		Name:  name,
		Email: u.Attributes.Email,
	}
}
