package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"crmctl/pkg/logging"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
)

const gatewaySubsystem = "Gateway"

// Gateway is everything the front end needs from the backend.
type Gateway interface {
	ListCustomers(ctx context.Context, search string) ([]CustomerSummary, error)
	GetCustomer(ctx context.Context, id ID) (*Customer, error)
	CreateCustomer(ctx context.Context, in CustomerInput) (Result, error)
	UpdateCustomer(ctx context.Context, id ID, in CustomerInput) (Result, error)
	DeleteCustomer(ctx context.Context, id ID) (Result, error)

	GetAddress(ctx context.Context, id ID) (*Address, error)
	CreateAddress(ctx context.Context, in AddressInput) (Result, error)
	UpdateAddress(ctx context.Context, id ID, in AddressInput) (Result, error)
	DeleteAddress(ctx context.Context, id ID) (Result, error)
}

// Client is the HTTP implementation of Gateway.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	timeout      time.Duration
	newRequestID func() string
}

var _ Gateway = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a gateway for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL:      u,
		httpClient:   cleanhttp.DefaultPooledClient(),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL.String() }

type listCustomersQuery struct {
	Search string `url:"search"`
}

// ListCustomers fetches the customer collection filtered by search. The empty
// term asks for every customer.
func (c *Client) ListCustomers(ctx context.Context, search string) ([]CustomerSummary, error) {
	q, err := query.Values(listCustomersQuery{Search: search})
	if err != nil {
		return nil, &TransportError{Op: "list customers", Err: err}
	}
	var out []CustomerSummary
	if err := c.read(ctx, "list customers", "customers", q, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []CustomerSummary{}
	}
	return out, nil
}

// GetCustomer fetches one customer with its addresses.
func (c *Client) GetCustomer(ctx context.Context, id ID) (*Customer, error) {
	if id.IsZero() {
		return nil, &ValidationError{Fields: []string{"Customer ID"}}
	}
	var out Customer
	if err := c.read(ctx, "get customer", "customers/"+url.PathEscape(id.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer posts a new customer with its primary address.
func (c *Client) CreateCustomer(ctx context.Context, in CustomerInput) (Result, error) {
	return c.mutate(ctx, "create customer", http.MethodPost, "customers", in)
}

// UpdateCustomer replaces the customer's fields. Additional address drafts are
// never sent on update.
func (c *Client) UpdateCustomer(ctx context.Context, id ID, in CustomerInput) (Result, error) {
	if id.IsZero() {
		return Result{}, &ValidationError{Fields: []string{"Customer ID"}}
	}
	in.AdditionalAddresses = nil
	return c.mutate(ctx, "update customer", http.MethodPut, "customers/"+url.PathEscape(id.String()), in)
}

// DeleteCustomer removes the customer.
func (c *Client) DeleteCustomer(ctx context.Context, id ID) (Result, error) {
	if id.IsZero() {
		return Result{}, &ValidationError{Fields: []string{"Customer ID"}}
	}
	return c.mutate(ctx, "delete customer", http.MethodDelete, "customers/"+url.PathEscape(id.String()), nil)
}

// GetAddress fetches one address.
func (c *Client) GetAddress(ctx context.Context, id ID) (*Address, error) {
	if id.IsZero() {
		return nil, &ValidationError{Fields: []string{"Address ID"}}
	}
	var out Address
	if err := c.read(ctx, "get address", "addresses/"+url.PathEscape(id.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAddress adds an address to in.CustomerID.
func (c *Client) CreateAddress(ctx context.Context, in AddressInput) (Result, error) {
	return c.mutate(ctx, "create address", http.MethodPost, "addresses", in)
}

// UpdateAddress replaces the address fields.
func (c *Client) UpdateAddress(ctx context.Context, id ID, in AddressInput) (Result, error) {
	if id.IsZero() {
		return Result{}, &ValidationError{Fields: []string{"Address ID"}}
	}
	return c.mutate(ctx, "update address", http.MethodPut, "addresses/"+url.PathEscape(id.String()), in)
}

// DeleteAddress removes the address.
func (c *Client) DeleteAddress(ctx context.Context, id ID) (Result, error) {
	if id.IsZero() {
		return Result{}, &ValidationError{Fields: []string{"Address ID"}}
	}
	return c.mutate(ctx, "delete address", http.MethodDelete, "addresses/"+url.PathEscape(id.String()), nil)
}

// read issues a GET and decodes a 2xx body into out.
func (c *Client) read(ctx context.Context, op, path string, q url.Values, out interface{}) error {
	status, raw, err := c.do(ctx, op, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		var body messageBody
		_ = json.Unmarshal(raw, &body)
		return &ServerError{Status: status, Message: firstNonEmpty(body.Error, body.Message)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// mutate issues a write and turns the {message}/{error} body into a Result.
func (c *Client) mutate(ctx context.Context, op, method, path string, body interface{}) (Result, error) {
	status, raw, err := c.do(ctx, op, method, path, nil, body)
	if err != nil {
		return Result{}, err
	}

	var decoded messageBody
	var decodeErr error
	if len(bytes.TrimSpace(raw)) > 0 {
		decodeErr = json.Unmarshal(raw, &decoded)
	}

	if isSuccess(status) {
		if decodeErr != nil {
			return Result{}, &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", decodeErr)}
		}
		return Result{OK: true, Status: status, Message: decoded.Message}, nil
	}

	msg := firstNonEmpty(decoded.Error, decoded.Message)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return Result{OK: false, Status: status, Message: msg}, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, q url.Values, body interface{}) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL.JoinPath(path)
	if q != nil {
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &TransportError{Op: op, Err: fmt.Errorf("encoding request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	requestID := c.newRequestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("no response within %s: %w", c.timeout, err)
		}
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}

	logging.DebugAttrs(gatewaySubsystem, op,
		slog.String("method", method),
		slog.String("url", u.Redacted()),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", requestID),
		slog.Duration("elapsed", time.Since(start)),
	)
	return resp.StatusCode, raw, nil
}

func isSuccess(status int) bool { return status >= 200 && status < 300 }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
