package stub

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshcart/store-console/internal/core/domain"
)

// account is a stored user with its password hash.
type account struct {
	domain.User
	PasswordHash string
}

// memoryStore backs the stub with plain maps. All access goes through
// the mutex; handlers never hold references into the maps.
type memoryStore struct {
	mu        sync.RWMutex
	users     map[string]account // keyed by username
	products  map[string]domain.Product
	categorys map[string]domain.Category
	orders    map[string]domain.Order
	customers map[string]domain.Customer
	coupons   map[string]domain.Coupon
	settings  domain.StoreSettings
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:     make(map[string]account),
		products:  make(map[string]domain.Product),
		categorys: make(map[string]domain.Category),
		orders:    make(map[string]domain.Order),
		customers: make(map[string]domain.Customer),
		coupons:   make(map[string]domain.Coupon),
		settings:  domain.StoreSettings{ID: "store-1", StoreName: "FreshCart"},
	}
}

func (s *memoryStore) createUser(username, password, role string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	if role == "" {
		role = domain.RoleAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return domain.User{}, errUserExists
	}
	u := domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.users[username] = account{User: u, PasswordHash: string(hash)}
	return u, nil
}

func (s *memoryStore) authenticate(username, password string) (domain.User, bool) {
	s.mu.RLock()
	acc, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return domain.User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return domain.User{}, false
	}
	return acc.User, true
}

func (s *memoryStore) findUser(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.users[username]
	return acc.User, ok
}

func (s *memoryStore) listProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sortByID(out, func(p domain.Product) string { return p.ID })
	return out
}

func (s *memoryStore) putProduct(p domain.Product) domain.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
	return p
}

func (s *memoryStore) patchProduct(id string, patch map[string]any) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, false
	}
	applyProductPatch(&p, patch)
	s.products[id] = p
	return p, true
}

func (s *memoryStore) deleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

func (s *memoryStore) listCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, 0, len(s.categorys))
	for _, c := range s.categorys {
		out = append(out, c)
	}
	sortByID(out, func(c domain.Category) string { return c.ID })
	return out
}

func (s *memoryStore) putCategory(c domain.Category) domain.Category {
	if c.ID == "" {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categorys[c.ID] = c
	return c
}

func (s *memoryStore) deleteCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categorys[id]; !ok {
		return false
	}
	delete(s.categorys, id)
	return true
}

func (s *memoryStore) listOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sortByID(out, func(o domain.Order) string { return o.ID })
	return out
}

func (s *memoryStore) putOrder(o domain.Order) domain.Order {
	if o.ID == "" {
		o.ID = uuid.NewString()
		o.CreatedAt = time.Now().UTC()
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
	return o
}

func (s *memoryStore) setOrderStatus(id, status string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	o.Status = status
	s.orders[id] = o
	return o, true
}

func (s *memoryStore) listCustomers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	sortByID(out, func(c domain.Customer) string { return c.ID })
	return out
}

func (s *memoryStore) putCustomer(c domain.Customer) domain.Customer {
	if c.ID == "" {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
	return c
}

func (s *memoryStore) updateCustomer(id string, c domain.Customer) (domain.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.customers[id]
	if !ok {
		return domain.Customer{}, false
	}
	c.ID = id
	c.CreatedAt = prev.CreatedAt
	s.customers[id] = c
	return c, true
}

func (s *memoryStore) deleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return false
	}
	delete(s.customers, id)
	return true
}

func (s *memoryStore) listCoupons() []domain.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		out = append(out, c)
	}
	sortByID(out, func(c domain.Coupon) string { return c.ID })
	return out
}

func (s *memoryStore) putCoupon(c domain.Coupon) domain.Coupon {
	if c.ID == "" {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[c.ID] = c
	return c
}

func (s *memoryStore) patchCoupon(id string, active *bool) (domain.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coupons[id]
	if !ok {
		return domain.Coupon{}, false
	}
	if active != nil {
		c.IsActive = *active
	}
	s.coupons[id] = c
	return c, true
}

func (s *memoryStore) deleteCoupon(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coupons[id]; !ok {
		return false
	}
	delete(s.coupons, id)
	return true
}

func (s *memoryStore) getSettings() domain.StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *memoryStore) saveSettings(in domain.StoreSettings) domain.StoreSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.settings.ID
	s.settings = in
	return in
}

func applyProductPatch(p *domain.Product, patch map[string]any) {
	if v, ok := patch["name"].(string); ok {
		p.Name = v
	}
	if v, ok := patch["description"].(string); ok {
		p.Description = v
	}
	if v, ok := patch["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := patch["quantity"].(float64); ok {
		p.Quantity = int(v)
	}
	if v, ok := patch["category"].(string); ok {
		p.Category = v
	}
	if v, ok := patch["sku"].(string); ok {
		p.SKU = v
	}
	if v, ok := patch["isActive"].(bool); ok {
		p.IsActive = v
	}
}

func sortByID[T any](items []T, id func(T) string) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
