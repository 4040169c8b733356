// Package client calls the restaurant-bot REST API.
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
	"strings"
	"time"

	"restaurant-bot/chatbot"
	"restaurant-bot/models"
	"restaurant-bot/orders"
	"restaurant-bot/reservations"
	"restaurant-bot/store"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// APIError is a non-2xx response; Message is the server's "error" field
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrBadRequest:
		return e.Status == http.StatusBadRequest
	}
	return false
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type OrderResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}

type ReservationResponse struct {
	Message     string              `json:"message"`
	Reservation *models.Reservation `json:"reservation"`
}

func (c *Client) Restaurants(ctx context.Context, f store.RestaurantFilter) ([]models.Restaurant, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Cuisine != "" {
		q.Set("cuisine", f.Cuisine)
	}
	var out []models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/api/restaurants", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Restaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var out models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/api/restaurants/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Menu(ctx context.Context, f store.MenuFilter) ([]models.MenuItem, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", string(f.Category))
	}
	if f.VegOnly {
		q.Set("veg", "true")
	}
	var out []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu/"+url.PathEscape(f.RestaurantID), q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var out models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu/item/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req orders.Request) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/customer/"+url.PathEscape(email), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReservation(ctx context.Context, req reservations.Request) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := c.do(ctx, http.MethodPost, "/api/reservations", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReservationsByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := c.do(ctx, http.MethodGet, "/api/reservations/customer/"+url.PathEscape(email), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Chat(ctx context.Context, message string) (*chatbot.Reply, error) {
	var out chatbot.Reply
	body := map[string]string{"message": message}
	if err := c.do(ctx, http.MethodPost, "/api/chat", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = http.StatusText(res.StatusCode)
	}
	return &APIError{Status: res.StatusCode, Message: msg}
}
