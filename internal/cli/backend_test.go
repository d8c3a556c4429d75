package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

const (
	testUser     = "crio.do"
	testPassword = "learnwithcrio"
	testToken    = "tok-1"
)

// backend is an in-process stand-in for the QKART API.
type backend struct {
	mu          sync.Mutex
	products    []model.Product
	cart        []model.CartLine
	addresses   []model.Address
	balance     int64
	nextID      int
	omitBal     bool
	checkouts   int
	catalogDown bool
	orders      []model.Order
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	b := &backend{
		products: []model.Product{
			{ID: "p1", Name: "Tan Leatherette Weekender Duffle", Category: "Fashion", Cost: 150, Rating: 4},
			{ID: "p2", Name: "Black Headphones", Category: "Electronics", Cost: 60, Rating: 5},
		},
		balance: 5000,
		orders:  []model.Order{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", b.login)
	mux.HandleFunc("POST /v1/auth/logout", b.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}))
	mux.HandleFunc("GET /v1/products", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.catalogDown {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, b.products)
	})
	mux.HandleFunc("GET /v1/products/search", b.search)
	mux.HandleFunc("GET /v1/products/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []string{"Electronics", "Fashion"})
	})
	mux.HandleFunc("GET /v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range b.products {
			if p.ID == r.PathValue("id") {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		writeError(w, http.StatusNotFound, "Product not found")
	})
	mux.HandleFunc("GET /v1/cart", b.authed(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.cartLines())
	}))
	mux.HandleFunc("POST /v1/cart", b.authed(b.upsert))
	mux.HandleFunc("POST /v1/cart/checkout", b.authed(b.checkout))
	mux.HandleFunc("GET /v1/user/me", b.authed(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, model.Profile{Username: testUser, Balance: b.balance})
	}))
	mux.HandleFunc("GET /v1/user/addresses", b.authed(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.addressList())
	}))
	mux.HandleFunc("POST /v1/user/addresses", b.authed(b.addAddress))
	mux.HandleFunc("DELETE /v1/user/addresses/{id}", b.authed(b.deleteAddress))
	mux.HandleFunc("GET /v1/orders", b.authed(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.orders)
	}))
	mux.HandleFunc("POST /v1/wallet/topup", b.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, model.TopUpResponse{RedirectURL: "https://pay.example/snap/1"})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Success: false, Message: msg})
}

func (b *backend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeError(w, http.StatusUnauthorized, "Protected route, Oauth2 Bearer token not found")
			return
		}
		next(w, r)
	}
}

func (b *backend) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Username != testUser || body.Password != testPassword {
		writeError(w, http.StatusBadRequest, "Password is incorrect")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusCreated, model.LoginResponse{Success: true, Token: testToken, Username: testUser, Balance: b.balance})
}

func (b *backend) search(w http.ResponseWriter, r *http.Request) {
	value := strings.ToLower(r.URL.Query().Get("value"))
	var out []model.Product
	for _, p := range b.products {
		if strings.Contains(strings.ToLower(p.Name), value) || strings.Contains(strings.ToLower(p.Category), value) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		writeJSON(w, http.StatusNotFound, []model.Product{})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *backend) cartLines() []model.CartLine {
	out := make([]model.CartLine, len(b.cart))
	copy(out, b.cart)
	return out
}

func (b *backend) addressList() []model.Address {
	out := make([]model.Address, len(b.addresses))
	copy(out, b.addresses)
	return out
}

func (b *backend) upsert(w http.ResponseWriter, r *http.Request) {
	var line model.CartLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.cart {
		if b.cart[i].ProductID == line.ProductID {
			if line.Qty == 0 {
				b.cart = append(b.cart[:i], b.cart[i+1:]...)
			} else {
				b.cart[i].Qty = line.Qty
			}
			writeJSON(w, http.StatusOK, b.cartLines())
			return
		}
	}
	if line.Qty > 0 {
		b.cart = append(b.cart, line)
	}
	writeJSON(w, http.StatusOK, b.cartLines())
}

func (b *backend) checkout(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var total int64
	for _, l := range b.cart {
		for _, p := range b.products {
			if p.ID == l.ProductID {
				total += p.Cost * int64(l.Qty)
			}
		}
	}
	if total > b.balance {
		writeError(w, http.StatusBadRequest, "Wallet balance not sufficient to place order")
		return
	}
	b.balance -= total
	b.checkouts++
	order := model.Order{ID: "order-" + strconv.Itoa(b.checkouts), Total: total, Items: b.cartLines()}
	b.orders = append([]model.Order{order}, b.orders...)
	b.cart = nil
	resp := model.CheckoutResponse{Success: true, OrderID: order.ID}
	if !b.omitBal {
		bal := b.balance
		resp.Balance = &bal
	}
	writeJSON(w, http.StatusOK, resp)
}

func (b *backend) addAddress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Address string `json:"address"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if len(body.Address) < 20 {
		writeError(w, http.StatusBadRequest, "Address should be greater than 20 characters")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.addresses = append(b.addresses, model.Address{ID: "a" + strconv.Itoa(b.nextID), Address: body.Address})
	writeJSON(w, http.StatusOK, b.addressList())
}

func (b *backend) deleteAddress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, a := range b.addresses {
		if a.ID == id {
			b.addresses = append(b.addresses[:i], b.addresses[i+1:]...)
			writeJSON(w, http.StatusOK, b.addressList())
			return
		}
	}
	writeError(w, http.StatusNotFound, "Address not found")
}
