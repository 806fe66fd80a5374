package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"furnistore/internal/domain"
)

// TokenPair is the credential exchange result.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterInput captures the fields expected by the register endpoint.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// CheckoutItem is a selected line item reduced to the checkout payload shape.
type CheckoutItem struct {
	ID       int64  `json:"id"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color,omitempty"`
}

// CheckoutInput is the order creation request body.
type CheckoutInput struct {
	Items    []CheckoutItem  `json:"items"`
	Shipping domain.Shipping `json:"shipping"`
}

// Token exchanges credentials for an access/refresh token pair.
func (c *Client) Token(ctx context.Context, username, password string) (TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/accounts/token/", map[string]string{
		"username": username,
		"password": password,
	}, &pair)
	return pair, err
}

// Register creates an account. Login is a separate exchange.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/accounts/register/", in, nil)
}

// Me fetches the identity snapshot for the current bearer token.
func (c *Client) Me(ctx context.Context) (domain.Identity, error) {
	var id domain.Identity
	err := c.do(ctx, http.MethodGet, "/accounts/me/", nil, &id)
	return id, err
}

// FetchCart retrieves the server-side cart for the current identity.
func (c *Client) FetchCart(ctx context.Context) ([]domain.LineItem, error) {
	var resp struct {
		Items []domain.LineItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/cart/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddCartItem adds one product variant to the server-side cart.
func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int, color string) error {
	return c.do(ctx, http.MethodPost, "/cart/add/", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
		"color":      color,
	}, nil)
}

// RemoveCartItem removes a line item and returns the remaining cart.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) ([]domain.LineItem, error) {
	var resp struct {
		Items []domain.LineItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodPost, "/cart/remove/", map[string]int64{"item_id": itemID}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Checkout creates an order from the selected items and shipping fields.
func (c *Client) Checkout(ctx context.Context, in CheckoutInput) (domain.Order, error) {
	var order domain.Order
	err := c.do(ctx, http.MethodPost, "/orders/checkout/", in, &order)
	return order, err
}

// Products lists the catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.do(ctx, http.MethodGet, "/catalog/products/", nil, &products)
	return products, err
}

// Product fetches one catalog entry.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/catalog/products/%d/", id), nil, &product)
	return product, err
}

// Categories lists the navigation tree.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := c.do(ctx, http.MethodGet, "/catalog/categories/", nil, &categories)
	return categories, err
}

// Blogs lists blog posts. Guests see published posts only; a staff bearer
// token widens the list to drafts.
func (c *Client) Blogs(ctx context.Context) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := c.do(ctx, http.MethodGet, "/blogs/", nil, &posts)
	return posts, err
}

// Blog fetches one post by id.
func (c *Client) Blog(ctx context.Context, id int64) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blogs/%d/", id), nil, &post)
	return post, err
}

// BlogBySlug resolves a post by its URL slug.
func (c *Client) BlogBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	var posts []domain.BlogPost
	if err := c.do(ctx, http.MethodGet, "/blogs/?slug="+url.QueryEscape(slug), nil, &posts); err != nil {
		return domain.BlogPost{}, err
	}
	if len(posts) == 0 {
		return domain.BlogPost{}, domain.ErrNotFound
	}
	return posts[0], nil
}

// CreateBlog publishes a new post (staff only).
func (c *Client) CreateBlog(ctx context.Context, post domain.BlogPost) (domain.BlogPost, error) {
	var created domain.BlogPost
	err := c.do(ctx, http.MethodPost, "/blogs/", post, &created)
	return created, err
}

// BlogUpdate carries the fields of a partial post edit; nil fields are left
// unchanged.
type BlogUpdate struct {
	Title         *string `json:"title,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty"`
	Content       *string `json:"content,omitempty"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	IsPublished   *bool   `json:"is_published,omitempty"`
}

// UpdateBlog patches a post (staff only).
func (c *Client) UpdateBlog(ctx context.Context, id int64, in BlogUpdate) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/blogs/%d/", id), in, &post)
	return post, err
}

// DeleteBlog removes a post (staff only).
func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d/", id), nil, nil)
}

// Subscribe signs an email address up for the newsletter.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/newsletter/subscribe/", map[string]string{"email": email}, nil)
}

// Subscribers lists all newsletter signups (staff only).
func (c *Client) Subscribers(ctx context.Context) ([]domain.Subscriber, error) {
	var subs []domain.Subscriber
	err := c.do(ctx, http.MethodGet, "/newsletter/", nil, &subs)
	return subs, err
}

// SetSubscriberActive toggles a subscriber's active flag (staff only).
func (c *Client) SetSubscriberActive(ctx context.Context, id int64, active bool) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/newsletter/%d/", id), map[string]bool{"is_active": active}, nil)
}

// Unsubscribe deletes a subscriber (staff only).
func (c *Client) Unsubscribe(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/newsletter/%d/", id), nil, nil)
}

// Orders lists orders (staff only).
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.do(ctx, http.MethodGet, "/orders/", nil, &orders)
	return orders, err
}

// Order fetches one order (staff only).
func (c *Client) Order(ctx context.Context, id int64) (domain.Order, error) {
	var order domain.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/", id), nil, &order)
	return order, err
}

// MarkOrderPaid transitions an order to paid (staff only).
func (c *Client) MarkOrderPaid(ctx context.Context, id int64) (domain.Order, error) {
	var order domain.Order
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/mark_paid/", id), nil, &order)
	return order, err
}

// UpdateOrderStatus patches an order's status (staff only).
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (domain.Order, error) {
	var order domain.Order
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/", id), map[string]string{"status": status}, &order)
	return order, err
}
