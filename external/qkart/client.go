package qkart

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

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

const DefaultBaseURL = "http://localhost:8082/v1"

// APIError is a non-2xx answer from the QKART backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qkart: %d %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// an *APIError (transport failures, decode errors).
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client talks to the QKART REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e model.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if err := json.Unmarshal(raw, &e); err != nil || e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/products", "", nil, &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/products/categories", "", nil, &out)
	return out, err
}

// Search returns products matching value. The backend answers 404 when
// nothing matches; that is reported as an empty result.
func (c *Client) Search(ctx context.Context, value string) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/products/search?value="+url.QueryEscape(value), "", nil, &out)
	if StatusCode(err) == http.StatusNotFound {
		return []model.Product{}, nil
	}
	return out, err
}

func (c *Client) Cart(ctx context.Context, token string) ([]model.CartLine, error) {
	var out []model.CartLine
	err := c.do(ctx, http.MethodGet, "/cart", token, nil, &out)
	return out, err
}

// SetCartQuantity upserts one cart line and returns the whole cart.
func (c *Client) SetCartQuantity(ctx context.Context, token, productID string, qty int) ([]model.CartLine, error) {
	var out []model.CartLine
	body := model.CartLine{ProductID: productID, Qty: qty}
	err := c.do(ctx, http.MethodPost, "/cart", token, body, &out)
	return out, err
}

func (c *Client) Checkout(ctx context.Context, token, addressID string) (*model.CheckoutResponse, error) {
	var out model.CheckoutResponse
	body := map[string]string{"addressId": addressID}
	if err := c.do(ctx, http.MethodPost, "/cart/checkout", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	var out model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", credentials{username, password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", credentials{username, password}, nil)
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

func (c *Client) Me(ctx context.Context, token string) (*model.Profile, error) {
	var out model.Profile
	if err := c.do(ctx, http.MethodGet, "/user/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Addresses(ctx context.Context, token string) ([]model.Address, error) {
	var out []model.Address
	err := c.do(ctx, http.MethodGet, "/user/addresses", token, nil, &out)
	return out, err
}

// AddAddress stores address and returns the updated list.
func (c *Client) AddAddress(ctx context.Context, token, address string) ([]model.Address, error) {
	var out []model.Address
	body := map[string]string{"address": address}
	err := c.do(ctx, http.MethodPost, "/user/addresses", token, body, &out)
	return out, err
}

// DeleteAddress removes id and returns the updated list.
func (c *Client) DeleteAddress(ctx context.Context, token, id string) ([]model.Address, error) {
	var out []model.Address
	err := c.do(ctx, http.MethodDelete, "/user/addresses/"+url.PathEscape(id), token, nil, &out)
	return out, err
}

func (c *Client) TopUp(ctx context.Context, token string, amount int64) (*model.TopUpResponse, error) {
	var out model.TopUpResponse
	body := map[string]int64{"amount": amount}
	if err := c.do(ctx, http.MethodPost, "/wallet/topup", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders lists the caller's past orders, newest first.
func (c *Client) Orders(ctx context.Context, token string) ([]model.Order, error) {
	var out []model.Order
	err := c.do(ctx, http.MethodGet, "/orders", token, nil, &out)
	return out, err
}
