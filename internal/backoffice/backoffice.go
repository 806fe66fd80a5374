// Package backoffice exposes the admin operations of the storefront API:
// order management and newsletter subscriber administration.
package backoffice

import (
	"context"
	"errors"
	"fmt"

	"furnistore/internal/api"
	"furnistore/internal/domain"
)

type adminAPI interface {
	Orders(ctx context.Context) ([]domain.Order, error)
	Order(ctx context.Context, id int64) (domain.Order, error)
	MarkOrderPaid(ctx context.Context, id int64) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (domain.Order, error)
	Subscribers(ctx context.Context) ([]domain.Subscriber, error)
	SetSubscriberActive(ctx context.Context, id int64, active bool) error
	Unsubscribe(ctx context.Context, id int64) error
	CreateBlog(ctx context.Context, post domain.BlogPost) (domain.BlogPost, error)
	UpdateBlog(ctx context.Context, id int64, in api.BlogUpdate) (domain.BlogPost, error)
	DeleteBlog(ctx context.Context, id int64) error
}

type identitySource interface {
	Current() *domain.Identity
}

// Client wraps the staff-only endpoints. Authorization is enforced
// server-side; the client only short-circuits the obvious guest case.
type Client struct {
	api      adminAPI
	identity identitySource
}

// New builds a Client.
func New(apiClient adminAPI, identity identitySource) *Client {
	return &Client{api: apiClient, identity: identity}
}

func (c *Client) requireLogin() error {
	if c.identity.Current() == nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// Orders lists all orders.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}
	return c.api.Orders(ctx)
}

// Order fetches one order.
func (c *Client) Order(ctx context.Context, id int64) (domain.Order, error) {
	if err := c.requireLogin(); err != nil {
		return domain.Order{}, err
	}
	return c.api.Order(ctx, id)
}

// MarkPaid transitions an order to paid.
func (c *Client) MarkPaid(ctx context.Context, id int64) (domain.Order, error) {
	if err := c.requireLogin(); err != nil {
		return domain.Order{}, err
	}
	order, err := c.api.MarkOrderPaid(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mark order %d paid: %w", id, err)
	}
	return order, nil
}

// MarkShipped transitions an order to shipped.
func (c *Client) MarkShipped(ctx context.Context, id int64) (domain.Order, error) {
	if err := c.requireLogin(); err != nil {
		return domain.Order{}, err
	}
	order, err := c.api.UpdateOrderStatus(ctx, id, domain.OrderStatusShipped)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mark order %d shipped: %w", id, err)
	}
	return order, nil
}

// Subscribers lists newsletter signups.
func (c *Client) Subscribers(ctx context.Context) ([]domain.Subscriber, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}
	return c.api.Subscribers(ctx)
}

// ToggleSubscriber flips a subscriber's active flag.
func (c *Client) ToggleSubscriber(ctx context.Context, sub domain.Subscriber) error {
	if err := c.requireLogin(); err != nil {
		return err
	}
	return c.api.SetSubscriberActive(ctx, sub.ID, !sub.IsActive)
}

// RemoveSubscriber deletes a subscriber.
func (c *Client) RemoveSubscriber(ctx context.Context, id int64) error {
	if err := c.requireLogin(); err != nil {
		return err
	}
	return c.api.Unsubscribe(ctx, id)
}

// CreateBlogPost creates a blog post after local validation.
func (c *Client) CreateBlogPost(ctx context.Context, post domain.BlogPost) (domain.BlogPost, error) {
	if err := c.requireLogin(); err != nil {
		return domain.BlogPost{}, err
	}
	if post.Title == "" {
		return domain.BlogPost{}, errors.New("title required")
	}
	created, err := c.api.CreateBlog(ctx, post)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("create blog post: %w", err)
	}
	return created, nil
}

// SetBlogPublished flips a post's published flag.
func (c *Client) SetBlogPublished(ctx context.Context, id int64, published bool) (domain.BlogPost, error) {
	if err := c.requireLogin(); err != nil {
		return domain.BlogPost{}, err
	}
	post, err := c.api.UpdateBlog(ctx, id, api.BlogUpdate{IsPublished: &published})
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("update blog post %d: %w", id, err)
	}
	return post, nil
}

// RemoveBlogPost deletes a post.
func (c *Client) RemoveBlogPost(ctx context.Context, id int64) error {
	if err := c.requireLogin(); err != nil {
		return err
	}
	return c.api.DeleteBlog(ctx, id)
}
