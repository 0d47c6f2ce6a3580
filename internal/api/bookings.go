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

// BookingRequest is the payload for creating or updating a booking.
type BookingRequest struct {
	HouseID  int    `json:"house_id"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Message  string `json:"message,omitempty"`
}

// ListBookings fetches the caller's bookings (tenant scope).
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return list[model.Booking](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/bookings",
	})
}

// GetBooking fetches a single booking by id.
func (c *Client) GetBooking(ctx context.Context, id int) (*model.Booking, error) {
	var b model.Booking
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/bookings/%d", id),
	}, &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBooking requests a house for a date range (tenant only).
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*model.Booking, error) {
	var b model.Booking
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/bookings",
		Body:   req,
	}, &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBooking rewrites a pending booking (tenant only).
func (c *Client) UpdateBooking(ctx context.Context, id int, req BookingRequest) (*model.Booking, error) {
	var b model.Booking
	err := c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/bookings/%d", id),
		Body:   req,
	}, &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBooking cancels a booking. The server answers with an empty body.
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/bookings/%d", id),
	}, nil)
}

// ListOwnerBookings fetches bookings for the owner's houses.
func (c *Client) ListOwnerBookings(ctx context.Context) ([]model.Booking, error) {
	return list[model.Booking](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/house-owner/bookings",
	})
}

// UpdateBookingStatus approves or rejects a booking (house owner only).
func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status model.BookingStatus) (*model.Booking, error) {
	var b model.Booking
	err := c.Do(ctx, Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/bookings/%d/status", id),
		Body:   map[string]int{"status": int(status)},
	}, &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
