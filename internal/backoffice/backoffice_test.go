package backoffice

import (
	"context"
	"errors"
	"testing"

	"furnistore/internal/api"
	"furnistore/internal/domain"
)

type stubAdminAPI struct {
	orders         []domain.Order
	order          domain.Order
	blog           domain.BlogPost
	err            error
	lastStatus     string
	lastActive     bool
	lastSubID      int64
	lastBlog       domain.BlogPost
	lastBlogID     int64
	lastBlogUpdate api.BlogUpdate
}

func (s *stubAdminAPI) Orders(_ context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubAdminAPI) Order(_ context.Context, _ int64) (domain.Order, error) {
	return s.order, s.err
}

func (s *stubAdminAPI) MarkOrderPaid(_ context.Context, _ int64) (domain.Order, error) {
	return s.order, s.err
}

func (s *stubAdminAPI) UpdateOrderStatus(_ context.Context, _ int64, status string) (domain.Order, error) {
	s.lastStatus = status
	return s.order, s.err
}

func (s *stubAdminAPI) Subscribers(_ context.Context) ([]domain.Subscriber, error) {
	return nil, s.err
}

func (s *stubAdminAPI) SetSubscriberActive(_ context.Context, id int64, active bool) error {
	s.lastSubID = id
	s.lastActive = active
	return s.err
}

func (s *stubAdminAPI) Unsubscribe(_ context.Context, id int64) error {
	s.lastSubID = id
	return s.err
}

func (s *stubAdminAPI) CreateBlog(_ context.Context, post domain.BlogPost) (domain.BlogPost, error) {
	s.lastBlog = post
	post.ID = 7
	return post, s.err
}

func (s *stubAdminAPI) UpdateBlog(_ context.Context, id int64, in api.BlogUpdate) (domain.BlogPost, error) {
	s.lastBlogID = id
	s.lastBlogUpdate = in
	return s.blog, s.err
}

func (s *stubAdminAPI) DeleteBlog(_ context.Context, id int64) error {
	s.lastBlogID = id
	return s.err
}

type stubIdentity struct {
	identity *domain.Identity
}

func (s *stubIdentity) Current() *domain.Identity { return s.identity }

func TestGuestIsRejected(t *testing.T) {
	client := New(&stubAdminAPI{}, &stubIdentity{})
	if _, err := client.Orders(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMarkShippedPatchesStatus(t *testing.T) {
	api := &stubAdminAPI{order: domain.Order{ID: 3, Status: domain.OrderStatusShipped}}
	client := New(api, &stubIdentity{identity: &domain.Identity{ID: 1, IsStaff: true}})

	order, err := client.MarkShipped(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastStatus != domain.OrderStatusShipped {
		t.Fatalf("expected shipped status patch, got %q", api.lastStatus)
	}
	if order.ID != 3 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestCreateBlogPostRequiresTitle(t *testing.T) {
	apiStub := &stubAdminAPI{}
	client := New(apiStub, &stubIdentity{identity: &domain.Identity{ID: 1, IsStaff: true}})

	if _, err := client.CreateBlogPost(context.Background(), domain.BlogPost{}); err == nil {
		t.Fatal("expected validation error for missing title")
	}

	created, err := client.CreateBlogPost(context.Background(), domain.BlogPost{Title: "Oak Care"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 || apiStub.lastBlog.Title != "Oak Care" {
		t.Fatalf("unexpected created post: %+v", created)
	}
}

func TestSetBlogPublishedPatchesFlag(t *testing.T) {
	apiStub := &stubAdminAPI{blog: domain.BlogPost{ID: 4, IsPublished: true}}
	client := New(apiStub, &stubIdentity{identity: &domain.Identity{ID: 1, IsStaff: true}})

	post, err := client.SetBlogPublished(context.Background(), 4, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if apiStub.lastBlogID != 4 || apiStub.lastBlogUpdate.IsPublished == nil || !*apiStub.lastBlogUpdate.IsPublished {
		t.Fatalf("expected publish patch for post 4, got %+v", apiStub.lastBlogUpdate)
	}
	if !post.IsPublished {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestBlogOperationsRejectGuests(t *testing.T) {
	client := New(&stubAdminAPI{}, &stubIdentity{})

	if _, err := client.CreateBlogPost(context.Background(), domain.BlogPost{Title: "x"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := client.RemoveBlogPost(context.Background(), 1); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestToggleSubscriberFlipsFlag(t *testing.T) {
	api := &stubAdminAPI{}
	client := New(api, &stubIdentity{identity: &domain.Identity{ID: 1, IsStaff: true}})

	sub := domain.Subscriber{ID: 12, IsActive: true}
	if err := client.ToggleSubscriber(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.lastSubID != 12 || api.lastActive != false {
		t.Fatalf("expected deactivation of subscriber 12, got id=%d active=%v", api.lastSubID, api.lastActive)
	}
}
