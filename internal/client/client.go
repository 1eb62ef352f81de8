// Package client is the storefront's HTTP client for the GrubDash API. It
// unwraps {data: ...} envelopes, normalizes every entity it receives (so
// responses in either field convention produce the same canonical values)
// and surfaces the server's error text verbatim when a request fails.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/falvarado7/grubdash/internal/domain"
	"github.com/falvarado7/grubdash/internal/normalize"
)

// ErrRequestFailed is returned when a failing response carries no
// structured error payload (a network failure or an empty body).
var ErrRequestFailed = errors.New("request failed")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// do runs the request and returns the raw payload with the {data: ...}
// envelope stripped when present.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(raw)
	}
	return unwrap(raw), nil
}

// serverError surfaces the server's message text verbatim where available
// and falls back to a generic failure otherwise.
func serverError(raw []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return errors.New(payload.Error)
	}
	return ErrRequestFailed
}

func unwrap(raw []byte) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if data, ok := envelope["data"]; ok {
			return data
		}
	}
	return raw
}

func decodeDish(raw json.RawMessage) (domain.Dish, error) {
	return normalize.DishJSON(raw)
}

func decodeDishes(raw json.RawMessage) ([]domain.Dish, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	dishes := []domain.Dish{}
	for _, item := range items {
		dish, err := normalize.DishJSON(item)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (c *Client) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	raw, err := c.do(ctx, http.MethodGet, "/dishes", nil)
	if err != nil {
		return nil, err
	}
	return decodeDishes(raw)
}

func (c *Client) GetDish(ctx context.Context, dishID int) (domain.Dish, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/dishes/%d", dishID), nil)
	if err != nil {
		return domain.Dish{}, err
	}
	return decodeDish(raw)
}

func (c *Client) CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	raw, err := c.do(ctx, http.MethodPost, "/dishes", dish)
	if err != nil {
		return domain.Dish{}, err
	}
	return decodeDish(raw)
}

func (c *Client) UpdateDish(ctx context.Context, dishID int, dish domain.Dish) (domain.Dish, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/dishes/%d", dishID), dish)
	if err != nil {
		return domain.Dish{}, err
	}
	return decodeDish(raw)
}

func (c *Client) DeleteDish(ctx context.Context, dishID int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/dishes/%d", dishID), nil)
	return err
}

func decodeOrder(raw json.RawMessage) (domain.Order, error) {
	return normalize.OrderJSON(raw)
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	raw, err := c.do(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	orders := []domain.Order{}
	for _, item := range items {
		order, err := decodeOrder(item)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID int) (domain.Order, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil)
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOrder(raw)
}

func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	raw, err := c.do(ctx, http.MethodPost, "/orders", order)
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOrder(raw)
}

func (c *Client) UpdateOrder(ctx context.Context, orderID int, order domain.Order) (domain.Order, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), order)
	if err != nil {
		return domain.Order{}, err
	}
	return decodeOrder(raw)
}

func (c *Client) DeleteOrder(ctx context.Context, orderID int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil)
	return err
}
