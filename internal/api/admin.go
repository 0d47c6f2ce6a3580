// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/toeirei/rentmaster/internal/model"
)

// Administrator-scoped reads across all aggregates. These all require an
// administrator session; the server rejects other tokens with 403.

// AdminHouses fetches every house in the system.
func (c *Client) AdminHouses(ctx context.Context) ([]model.House, error) {
	return list[model.House](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/admin/houses",
	})
}

// AdminBookings fetches every booking in the system.
func (c *Client) AdminBookings(ctx context.Context) ([]model.Booking, error) {
	return list[model.Booking](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/admin/bookings",
	})
}

// AdminPayments fetches every payment in the system.
func (c *Client) AdminPayments(ctx context.Context) ([]model.Payment, error) {
	return list[model.Payment](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/admin/payments",
	})
}

// AdminFeedback fetches every feedback entry in the system.
func (c *Client) AdminFeedback(ctx context.Context) ([]model.Feedback, error) {
	return list[model.Feedback](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/admin/feedback",
	})
}

// AdminTenants fetches the tenant user list.
func (c *Client) AdminTenants(ctx context.Context) ([]model.UserProfile, error) {
	return list[model.UserProfile](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/admin/tenants",
	})
}

// AdminHouseOwners fetches the house-owner user list.
func (c *Client) AdminHouseOwners(ctx context.Context) ([]model.UserProfile, error) {
	return list[model.UserProfile](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/admin/house-owners",
	})
}

// AdminDeleteHouse removes any house listing (administrator only).
func (c *Client) AdminDeleteHouse(ctx context.Context, id int) error {
	return c.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/houses/%d", id),
	}, nil)
}
