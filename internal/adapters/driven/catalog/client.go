package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/vitrine/internal/core/domain"
	"github.com/custodia-labs/vitrine/internal/core/ports/driven"
	"github.com/custodia-labs/vitrine/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ProductSource = (*Client)(nil)

const (
	productsPath = "/products"
	productPath  = "/products/{id}"
)

// Client fetches products from the catalog API.
type Client struct {
	rest    *resty.Client
	limiter *rate.Limiter
	baseURL string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit throttles outbound requests to perSecond with a burst of one.
// A value of zero or less disables throttling.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewClient creates a catalog client. Without options it targets
// domain.DefaultBaseURL with domain.DefaultTimeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: domain.DefaultBaseURL,
		timeout: domain.DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(domain.DefaultRatePerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.rest = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeader("Accept", "application/json")

	return c
}

// NewClientFromSettings creates a client from application settings.
func NewClientFromSettings(settings domain.AppSettings) *Client {
	return NewClient(
		WithBaseURL(settings.BaseURL),
		WithTimeout(settings.Timeout),
		WithRateLimit(settings.RatePerSecond),
	)
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	logger.Debug("GET %s%s", c.baseURL, productsPath)

	var products []domain.Product
	resp, err := c.get(ctx, productsPath, nil, &products)
	if err := classify(resp, err); err != nil {
		logger.Warn("list products failed: %v (%s)", err, describeCause(err))
		return nil, err
	}

	if products == nil {
		products = []domain.Product{}
	}
	logger.Debug("received %d products", len(products))
	return products, nil
}

// GetProduct fetches a single product. Any failure after validation is
// reported as *domain.ProductNotFoundError.
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: product id must be a positive integer, got %d", domain.ErrInvalidInput, id)
	}

	logger.Debug("GET %s/products/%d", c.baseURL, id)

	var product domain.Product
	resp, err := c.get(ctx, productPath, map[string]string{"id": strconv.Itoa(id)}, &product)
	if cause := classify(resp, err); cause != nil {
		logger.Warn("get product %d failed: %v (%s)", id, cause, describeCause(cause))
		return nil, &domain.ProductNotFoundError{ID: id, Cause: cause}
	}

	// The API answers unknown ids with 200 and an empty body.
	if product.ID == 0 {
		return nil, &domain.ProductNotFoundError{ID: id, Cause: domain.ErrNotFound}
	}
	return &product, nil
}

// get performs a throttled GET, decoding a 2xx body into result and a
// non-2xx JSON body into errorBody.
func (c *Client) get(
	ctx context.Context, path string, pathParams map[string]string, result any,
) (*resty.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	req := c.rest.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&errorBody{}).
		ExpectContentType("application/json")
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}
	return req.Get(path)
}
