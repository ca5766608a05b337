package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/blueshop/storefront/internal/domain"
)

// ErrLoadFailed marks any catalog fetch or decode failure. Recovery is a
// manual reload, never an automatic retry.
var ErrLoadFailed = errors.New("failed to load products")

// Client talks to the catalog collaborator over REST and keeps the last
// successfully loaded product list in memory for repeat views.
type Client struct {
	baseURL string
	http    *http.Client

	sfg singleflight.Group // collapses concurrent loads into one fetch

	mu       sync.RWMutex
	loaded   bool
	products []domain.Product
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// List fetches the current product list from the collaborator.
func (c *Client) List(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrLoadFailed, res.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return products, nil
}

// Seed asks the collaborator to populate demo data. The response body carries
// nothing the caller consumes.
func (c *Client) Seed(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products/seed", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
	return nil
}

// Load fetches the product list, seeding demo data exactly once when the
// catalog comes back empty, then re-fetching. Concurrent calls share a
// single upstream round-trip.
func (c *Client) Load(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := c.sfg.Do("products", func() (interface{}, error) {
		products, err := c.List(ctx)
		if err != nil {
			return nil, err
		}

		if len(products) == 0 {
			if err := c.Seed(ctx); err != nil {
				return nil, err
			}
			if products, err = c.List(ctx); err != nil {
				return nil, err
			}
		}

		c.mu.Lock()
		c.loaded = true
		c.products = products
		c.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// Loaded reports whether a Load has ever succeeded.
func (c *Client) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Products returns the last successfully loaded list without refetching.
func (c *Client) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}
