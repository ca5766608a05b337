package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/blueshop/storefront/internal/domain"
)

// PlacementError carries the collaborator's failure detail for display. The
// message is shown to the customer verbatim when the server supplied one.
type PlacementError struct {
	Status int
	Detail string
}

func (e *PlacementError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "Order failed"
}

// Client talks to the order collaborator over REST.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Place submits the order snapshot. Any failure comes back as a
// *PlacementError; the attempt is never retried here.
func (c *Client) Place(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		log.Printf("order submit failed: %v", err)
		return nil, &PlacementError{}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		perr := &PlacementError{Status: res.StatusCode}
		var errBody struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(res.Body).Decode(&errBody); err == nil {
			perr.Detail = errBody.Detail
		}
		return nil, perr
	}

	var result domain.OrderResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		log.Printf("order response decode failed: %v", err)
		return nil, &PlacementError{Status: res.StatusCode}
	}
	return &result, nil
}
