package client

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

	"github.com/dmitrijs2005/netflex/internal/client/models"
	"github.com/dmitrijs2005/netflex/internal/common"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	newID      func() string
}

type Option func(*options)

type options struct {
	timeout    time.Duration
	registerer prometheus.Registerer
	transport  http.RoundTripper
}

// WithTimeout bounds every request, including reading the response.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRegisterer registers the request metrics in reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// NewHTTPClient builds a client for the API rooted at endpoint, e.g.
// "https://api.example.com/api".
func NewHTTPClient(endpoint string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api endpoint %q: scheme must be http or https", endpoint)
	}

	o := options{timeout: 15 * time.Second, transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}

	m := newTransportMetrics(o.registerer)

	return &HTTPClient{
		baseURL: u,
		httpClient: &http.Client{
			Timeout:   o.timeout,
			Transport: m.instrument(o.transport),
		},
		newID: uuid.NewString,
	}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// userDTO uses a pointer id so a missing user_id can be told apart from 0.
type userDTO struct {
	ID       *int64 `json:"user_id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// Login exchanges credentials for a bearer token.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	body := loginRequest{Username: username, Password: string(password)}

	data, err := c.send(ctx, http.MethodPost, "", body, "auth", "login")
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := decodeStrict(data, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrMissingToken
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	data, err := c.send(ctx, http.MethodGet, token, nil, "user")
	if err != nil {
		return nil, err
	}

	var resp []userDTO
	if err := decodeStrict(data, &resp); err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(resp))
	for i, u := range resp {
		if u.ID == nil {
			return nil, fmt.Errorf("%w: user #%d has no user_id", ErrMalformedResponse, i)
		}
		users = append(users, models.User{ID: *u.ID, Username: u.Username, Fullname: u.Fullname})
	}
	return users, nil
}

// CreateUser returns the server's confirmation message.
func (c *HTTPClient) CreateUser(ctx context.Context, token string, user models.NewUser) (string, error) {
	data, err := c.send(ctx, http.MethodPost, token, user, "user")
	if err != nil {
		return "", err
	}
	return decodeMessage(data), nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token string, id int64) (string, error) {
	data, err := c.send(ctx, http.MethodDelete, token, nil, "user", strconv.FormatInt(id, 10))
	if err != nil {
		return "", err
	}
	return decodeMessage(data), nil
}

// send issues one request and returns the body of a 2xx response.
func (c *HTTPClient) send(ctx context.Context, method, token string, in any, path ...string) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path...).String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, c.newID())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	tooLarge := len(data) > maxBodySize

	// an oversized error body still reports its status
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapError(resp.StatusCode, data[:min(len(data), maxBodySize)])
	}
	if tooLarge {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, maxBodySize)
	}
	return data, nil
}

func decodeStrict(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// decodeMessage extracts {"message": ...} from a success body. The status
// already confirmed the mutation, so an odd body only loses the message.
func decodeMessage(data []byte) string {
	var resp messageResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return ""
	}
	return resp.Message
}

// mapError turns a non-2xx response into an *APIError. A body that is not the
// usual {message, errors} object still yields an APIError with the status.
func mapError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Errors = payload.Errors
	}
	return apiErr
}

// IsUnavailable reports whether err means no HTTP response was received.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
