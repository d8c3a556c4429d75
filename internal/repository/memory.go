package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"

	"github.com/google/uuid"
)

// MemoryStore holds every table in process memory. It backs the server
// when no DATABASE_URL is configured and the endpoint tests.
type MemoryStore struct {
	mu        sync.RWMutex
	products  []model.Product
	users     map[string]*model.User
	carts     map[string][]model.CartLine
	addresses map[string][]model.Address
	orders    []model.Order
	topups    map[string]*model.WalletTopUp
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]*model.User),
		carts:     make(map[string][]model.CartLine),
		addresses: make(map[string][]model.Address),
		topups:    make(map[string]*model.WalletTopUp),
	}
}

// SeedProducts appends products to the catalog, skipping known ids.
func (s *MemoryStore) SeedProducts(products []model.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, p := range products {
		if s.productLocked(p.ID) != nil {
			continue
		}
		s.products = append(s.products, p)
		n++
	}
	return n
}

func (s *MemoryStore) productLocked(id string) *model.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

func (s *MemoryStore) Products() *MemoryProductRepository { return &MemoryProductRepository{s} }
func (s *MemoryStore) Users() *MemoryAuthRepository       { return &MemoryAuthRepository{s} }
func (s *MemoryStore) Carts() *MemoryCartRepository       { return &MemoryCartRepository{s} }
func (s *MemoryStore) Addresses() *MemoryAddressRepository {
	return &MemoryAddressRepository{s}
}
func (s *MemoryStore) Payments() *MemoryPaymentRepository { return &MemoryPaymentRepository{s} }
func (s *MemoryStore) Orders() *MemoryOrderRepository     { return &MemoryOrderRepository{s} }

type MemoryProductRepository struct{ s *MemoryStore }

func (r *MemoryProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.Product{}, r.s.products...), nil
}

func (r *MemoryProductRepository) GetByID(_ context.Context, id string) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p := r.s.productLocked(id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryProductRepository) Search(_ context.Context, value string) ([]model.Product, error) {
	q := strings.ToLower(value)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []model.Product{}
	for _, p := range r.s.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryProductRepository) Categories(_ context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := map[string]bool{}
	out := []string{}
	for _, p := range r.s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

type MemoryAuthRepository struct{ s *MemoryStore }

func (r *MemoryAuthRepository) CreateUser(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return ErrUsernameTaken
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *MemoryAuthRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryAuthRepository) GetByID(_ context.Context, id string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	cp.PasswordHash = ""
	return &cp, nil
}

type MemoryCartRepository struct{ s *MemoryStore }

func (r *MemoryCartRepository) GetLines(_ context.Context, userID string) ([]model.CartLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.CartLine{}, r.s.carts[userID]...), nil
}

func (r *MemoryCartRepository) UpsertLine(_ context.Context, userID, productID string, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	lines := r.s.carts[userID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if qty <= 0 {
			r.s.carts[userID] = append(lines[:i:i], lines[i+1:]...)
		} else {
			lines[i].Qty = qty
		}
		return nil
	}
	if qty > 0 {
		r.s.carts[userID] = append(lines, model.CartLine{ProductID: productID, Qty: qty})
	}
	return nil
}

func (r *MemoryCartRepository) Checkout(_ context.Context, userID, addressID string) (*model.Order, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, 0, ErrUserNotFound
	}
	lines := r.s.carts[userID]
	if len(lines) == 0 {
		return nil, 0, ErrCartEmpty
	}

	order := &model.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		AddressID: addressID,
		Items:     make([]model.CartLine, 0, len(lines)),
		CreatedAt: time.Now(),
	}
	for _, l := range lines {
		p := r.s.productLocked(l.ProductID)
		if p == nil {
			continue
		}
		order.Items = append(order.Items, l)
		order.Total += int64(l.Qty) * p.Cost
	}
	if len(order.Items) == 0 {
		return nil, 0, ErrCartEmpty
	}
	if u.WalletMoney < order.Total {
		return nil, 0, ErrInsufficientBalance
	}

	u.WalletMoney -= order.Total
	r.s.orders = append(r.s.orders, *order)
	delete(r.s.carts, userID)
	return order, u.WalletMoney, nil
}

type MemoryOrderRepository struct{ s *MemoryStore }

// ListByUser returns the user's orders, newest first.
func (r *MemoryOrderRepository) ListByUser(_ context.Context, userID string) ([]model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []model.Order{}
	for i := len(r.s.orders) - 1; i >= 0; i-- {
		if r.s.orders[i].UserID == userID {
			out = append(out, r.s.orders[i])
		}
	}
	return out, nil
}

type MemoryAddressRepository struct{ s *MemoryStore }

func (r *MemoryAddressRepository) List(_ context.Context, userID string) ([]model.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.Address{}, r.s.addresses[userID]...), nil
}

func (r *MemoryAddressRepository) Add(_ context.Context, userID, address string) (*model.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := model.Address{ID: uuid.NewString(), Address: address}
	r.s.addresses[userID] = append(r.s.addresses[userID], a)
	return &a, nil
}

func (r *MemoryAddressRepository) Delete(_ context.Context, userID, addressID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.s.addresses[userID]
	for i := range list {
		if list[i].ID == addressID {
			r.s.addresses[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return ErrAddressNotFound
}

func (r *MemoryAddressRepository) Exists(_ context.Context, userID, addressID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.addresses[userID] {
		if a.ID == addressID {
			return true, nil
		}
	}
	return false, nil
}

type MemoryPaymentRepository struct{ s *MemoryStore }

func (r *MemoryPaymentRepository) CreatePending(_ context.Context, t *model.WalletTopUp) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *t
	cp.Status = model.TopUpPending
	r.s.topups[t.ID] = &cp
	return nil
}

func (r *MemoryPaymentRepository) GetByID(_ context.Context, id string) (*model.WalletTopUp, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.topups[id]
	if !ok {
		return nil, ErrTopUpNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *MemoryPaymentRepository) MarkPaid(_ context.Context, id, providerRef string, payload []byte) (bool, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.topups[id]
	if !ok || t.Status != model.TopUpPending {
		return false, 0, nil
	}
	u, ok := r.s.users[t.UserID]
	if !ok {
		return false, 0, ErrUserNotFound
	}
	now := time.Now()
	t.Status = model.TopUpPaid
	t.ProviderRef = providerRef
	t.ProviderPayload = payload
	t.PaidAt = &now
	u.WalletMoney += t.Amount
	return true, u.WalletMoney, nil
}

func (r *MemoryPaymentRepository) MarkFailed(_ context.Context, id string, payload []byte) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.topups[id]; ok && t.Status == model.TopUpPending {
		t.Status = model.TopUpFailed
		t.ProviderPayload = payload
	}
	return nil
}
