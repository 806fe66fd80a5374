package stubapi

import (
	"errors"
	"sync"
	"time"

	"furnistore/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var errAccountExists = errors.New("account already exists")

type account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	IsStaff      bool
}

func (a *account) identity() domain.Identity {
	return domain.Identity{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		IsStaff:   a.IsStaff,
	}
}

// memoryStore holds all stub data. Everything is lost on restart, which is
// the point: this server exists for local development and tests.
type memoryStore struct {
	mu          sync.Mutex
	accounts    map[int64]*account
	byUsername  map[string]int64
	byEmail     map[string]int64
	nextUserID  int64
	carts       map[int64][]domain.LineItem
	nextItemID  int64
	orders      map[int64]*domain.Order
	nextOrderID int64
	subscribers map[int64]*domain.Subscriber
	nextSubID   int64
	blogs       map[int64]*domain.BlogPost
	nextBlogID  int64
	products    []domain.Product
	categories  []domain.Category
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		accounts:    make(map[int64]*account),
		byUsername:  make(map[string]int64),
		byEmail:     make(map[string]int64),
		carts:       make(map[int64][]domain.LineItem),
		orders:      make(map[int64]*domain.Order),
		subscribers: make(map[int64]*domain.Subscriber),
		blogs:       make(map[int64]*domain.BlogPost),
	}
	s.seed()
	return s
}

func (s *memoryStore) createAccount(username, email, password, firstName, lastName string, staff bool) (*account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byUsername[username]; exists {
		return nil, errAccountExists
	}
	if _, exists := s.byEmail[email]; exists {
		return nil, errAccountExists
	}
	s.nextUserID++
	a := &account{
		ID:           s.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		IsStaff:      staff,
	}
	s.accounts[a.ID] = a
	s.byUsername[username] = a.ID
	s.byEmail[email] = a.ID
	return a, nil
}

// authenticate matches a username or email against a password.
func (s *memoryStore) authenticate(credential, password string) (*account, bool) {
	s.mu.Lock()
	id, ok := s.byUsername[credential]
	if !ok {
		id, ok = s.byEmail[credential]
	}
	a := s.accounts[id]
	s.mu.Unlock()
	if !ok || a == nil {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) != nil {
		return nil, false
	}
	return a, true
}

func (s *memoryStore) accountByID(id int64) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	return a, ok
}

func (s *memoryStore) productByID(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *memoryStore) listProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *memoryStore) listCategories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *memoryStore) cartItems(userID int64) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}

// addCartItem merges into an existing (product, color) line or appends.
func (s *memoryStore) addCartItem(userID int64, product domain.Product, quantity int, color string) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID() == product.ID && items[i].VariantColor() == color {
			items[i].Quantity += quantity
			s.carts[userID] = items
			return items
		}
	}
	s.nextItemID++
	items = append(items, domain.LineItem{
		ID:       s.nextItemID,
		Product:  &product,
		Quantity: quantity,
		Color:    color,
		Image:    product.ImageFor(color),
	})
	s.carts[userID] = items
	return items
}

func (s *memoryStore) removeCartItem(userID, itemID int64) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	next := items[:0]
	for _, li := range items {
		if li.ID != itemID {
			next = append(next, li)
		}
	}
	s.carts[userID] = next
	out := make([]domain.LineItem, len(next))
	copy(out, next)
	return out
}

// consumeCart turns the requested cart items into an order, honoring the
// client's final quantity and color choices, and removes them from the cart.
func (s *memoryStore) consumeCart(a *account, requested []checkoutItemRequest, shipping domain.Shipping) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[int64]checkoutItemRequest, len(requested))
	for _, r := range requested {
		byID[r.ID] = r
	}

	var consumed []domain.LineItem
	var remaining []domain.LineItem
	for _, li := range s.carts[a.ID] {
		r, ok := byID[li.ID]
		if !ok {
			remaining = append(remaining, li)
			continue
		}
		if r.Quantity > 0 {
			li.Quantity = r.Quantity
		}
		if r.Color != "" {
			li.Color = r.Color
		}
		consumed = append(consumed, li)
	}
	if len(consumed) == 0 {
		return domain.Order{}, false
	}

	if shipping.Address == "" {
		shipping.Address = a.Email
	}

	totals := domain.Totals(consumed)
	orderItems := make([]domain.OrderItem, 0, len(consumed))
	for _, li := range consumed {
		name := ""
		if li.Product != nil {
			name = li.Product.Name
		}
		orderItems = append(orderItems, domain.OrderItem{
			ID:        li.ID,
			ProductID: li.ProductID(),
			Name:      name,
			Quantity:  li.Quantity,
			Color:     li.VariantColor(),
			UnitPrice: li.EffectiveUnitPrice(),
		})
	}

	s.nextOrderID++
	order := &domain.Order{
		ID:        s.nextOrderID,
		Customer:  a.Username,
		Items:     orderItems,
		Shipping:  shipping,
		Subtotal:  domain.RoundMoney(totals.Subtotal),
		Delivery:  domain.RoundMoney(totals.Delivery),
		Total:     domain.RoundMoney(totals.Total),
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	s.orders[order.ID] = order
	s.carts[a.ID] = remaining
	return *order, true
}

// orderByID returns a value copy so callers never share the stored order
// with concurrent writers.
func (s *memoryStore) orderByID(id int64) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	return *o, true
}

// setOrderStatus transitions an order under the store lock and returns the
// updated copy.
func (s *memoryStore) setOrderStatus(id int64, status string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	o.Status = status
	return *o, true
}

func (s *memoryStore) listOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, 0, len(s.orders))
	for id := int64(1); id <= s.nextOrderID; id++ {
		if o, ok := s.orders[id]; ok {
			out = append(out, *o)
		}
	}
	return out
}

func (s *memoryStore) subscribe(email string) *domain.Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subscribers {
		if sub.Email == email {
			sub.IsActive = true
			return sub
		}
	}
	s.nextSubID++
	sub := &domain.Subscriber{ID: s.nextSubID, Email: email, IsActive: true}
	s.subscribers[sub.ID] = sub
	return sub
}

func (s *memoryStore) listSubscribers() []domain.Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Subscriber, 0, len(s.subscribers))
	for id := int64(1); id <= s.nextSubID; id++ {
		if sub, ok := s.subscribers[id]; ok {
			out = append(out, *sub)
		}
	}
	return out
}

func (s *memoryStore) setSubscriberActive(id int64, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subscribers[id]
	if !ok {
		return false
	}
	sub.IsActive = active
	return true
}

func (s *memoryStore) deleteSubscriber(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[id]; !ok {
		return false
	}
	delete(s.subscribers, id)
	return true
}

// listBlogs returns published posts; staff callers also see drafts.
func (s *memoryStore) listBlogs(includeDrafts bool) []domain.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.BlogPost, 0, len(s.blogs))
	for id := int64(1); id <= s.nextBlogID; id++ {
		b, ok := s.blogs[id]
		if !ok {
			continue
		}
		if b.IsPublished || includeDrafts {
			out = append(out, *b)
		}
	}
	return out
}

func (s *memoryStore) blogByID(id int64) (domain.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blogs[id]
	if !ok {
		return domain.BlogPost{}, false
	}
	return *b, true
}

func (s *memoryStore) blogBySlug(slug string) (domain.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.blogs {
		if b.Slug == slug {
			return *b, true
		}
	}
	return domain.BlogPost{}, false
}

func (s *memoryStore) createBlog(post domain.BlogPost) domain.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextBlogID++
	post.ID = s.nextBlogID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	s.blogs[post.ID] = &post
	return post
}

// updateBlog applies fn to the matching post under the store lock and
// returns the updated copy.
func (s *memoryStore) updateBlog(id int64, fn func(*domain.BlogPost)) (domain.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blogs[id]
	if !ok {
		return domain.BlogPost{}, false
	}
	fn(b)
	return *b, true
}

func (s *memoryStore) deleteBlog(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[id]; !ok {
		return false
	}
	delete(s.blogs, id)
	return true
}
