package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e     *echo.Echo
	store *repository.MemoryStore
}

func newTestServer(t *testing.T, wallet int64) *testServer {
	t.Helper()
	store := repository.NewMemoryStore()
	store.SeedProducts([]model.Product{
		{ID: "p1", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4},
		{ID: "p2", Name: "Basketball", Category: "Sports", Cost: 50, Rating: 5},
	})
	e := newServer(serverOptions{
		Repos:              memoryRepositories(store),
		Auth:               middleware.NewAuth("test-secret", time.Hour, repository.NewMemoryDenylist()),
		DefaultWalletMoney: wallet,
	})
	return &testServer{e: e, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	creds := echo.Map{"username": "crio.do", "password": "learnbydoing"}
	rec := s.do(t, http.MethodPost, "/v1/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/v1/auth/login", "", creds)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[model.LoginResponse](t, rec)
	require.True(t, resp.Success)
	return resp.Token
}

func TestAuthEndpoints(t *testing.T) {
	s := newTestServer(t, 5000)
	token := s.login(t)

	rec := s.do(t, http.MethodPost, "/v1/auth/register", "", echo.Map{"username": "crio.do", "password": "learnbydoing"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username is already taken", decode[model.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodPost, "/v1/auth/login", "", echo.Map{"username": "crio.do", "password": "nope-nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password is incorrect", decode[model.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodGet, "/v1/user/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Profile{Username: "crio.do", Balance: 5000}, decode[model.Profile](t, rec))

	rec = s.do(t, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/user/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductEndpoints(t *testing.T) {
	s := newTestServer(t, 0)

	rec := s.do(t, http.MethodGet, "/v1/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Product](t, rec), 2)

	rec = s.do(t, http.MethodGet, "/v1/products/search?value=ball", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]model.Product](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	rec = s.do(t, http.MethodGet, "/v1/products/search?value=zzz", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/products/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Phones", "Sports"}, decode[[]string](t, rec))

	rec = s.do(t, http.MethodGet, "/v1/products/p1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "iPhone XR", decode[model.Product](t, rec).Name)

	rec = s.do(t, http.MethodGet, "/v1/products/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartEndpoints(t *testing.T) {
	s := newTestServer(t, 1000)

	rec := s.do(t, http.MethodGet, "/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := s.login(t)

	rec = s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "ghost", "qty": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Product doesn't exist in database", decode[model.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p1", "qty": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p2", "qty": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []model.CartLine{{ProductID: "p1", Qty: 2}, {ProductID: "p2", Qty: 1}}, decode[[]model.CartLine](t, rec))

	for i := 0; i < 2; i++ {
		rec = s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p2", "qty": 0})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []model.CartLine{{ProductID: "p1", Qty: 2}}, decode[[]model.CartLine](t, rec))
	}

	rec = s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p1", "qty": -1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.CartLine](t, rec))
}

func TestCheckoutEndpoint(t *testing.T) {
	s := newTestServer(t, 1000)
	token := s.login(t)

	rec := s.do(t, http.MethodPost, "/v1/cart/checkout", token, echo.Map{"addressId": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Address not set", decode[model.ErrorResponse](t, rec).Message)

	rec = s.do(t, http.MethodPost, "/v1/user/addresses", token, echo.Map{"address": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/user/addresses", token, echo.Map{"address": "221B Baker Street, London NW1 6XE"})
	require.Equal(t, http.StatusOK, rec.Code)
	addrs := decode[[]model.Address](t, rec)
	require.Len(t, addrs, 1)

	rec = s.do(t, http.MethodPost, "/v1/cart/checkout", token, echo.Map{"addressId": addrs[0].ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cart is empty", decode[model.ErrorResponse](t, rec).Message)

	s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p1", "qty": 20})
	rec = s.do(t, http.MethodPost, "/v1/cart/checkout", token, echo.Map{"addressId": addrs[0].ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Wallet balance not sufficient to place order", decode[model.ErrorResponse](t, rec).Message)

	s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p1", "qty": 2})
	s.do(t, http.MethodPost, "/v1/cart", token, echo.Map{"productId": "p2", "qty": 1})
	rec = s.do(t, http.MethodPost, "/v1/cart/checkout", token, echo.Map{"addressId": addrs[0].ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[model.CheckoutResponse](t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Balance)
	assert.Equal(t, int64(750), *resp.Balance)
	orderID := resp.OrderID

	rec = s.do(t, http.MethodGet, "/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]model.Order](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID)
	assert.Equal(t, int64(250), orders[0].Total)

	rec = s.do(t, http.MethodGet, "/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.CartLine](t, rec))

	rec = s.do(t, http.MethodDelete, "/v1/user/addresses/"+addrs[0].ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Address](t, rec))

	rec = s.do(t, http.MethodDelete, "/v1/user/addresses/"+addrs[0].ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWalletEndpoints(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.login(t)

	rec := s.do(t, http.MethodPost, "/v1/wallet/topup", token, echo.Map{"amount": 100})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/wallet/notification", "", echo.Map{"order_id": "TOPUP-x"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")
}
