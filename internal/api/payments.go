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

// PaymentRequest is the payload for creating or updating a payment record.
type PaymentRequest struct {
	HouseID     int    `json:"house_id"`
	Details     string `json:"details,omitempty"`
	DatePayment string `json:"date_payment"`
}

// CreatePayment records a rent payment (tenant only).
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*model.Payment, error) {
	var p model.Payment
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/payments",
		Body:   req,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPayment fetches a single payment by id.
func (c *Client) GetPayment(ctx context.Context, id int) (*model.Payment, error) {
	var p model.Payment
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/payments/%d", id),
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePayment rewrites a payment record.
func (c *Client) UpdatePayment(ctx context.Context, id int, req PaymentRequest) (*model.Payment, error) {
	var p model.Payment
	err := c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/payments/%d", id),
		Body:   req,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePayment removes a payment record.
func (c *Client) DeletePayment(ctx context.Context, id int) error {
	return c.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/payments/%d", id),
	}, nil)
}

// ListTenantPayments fetches the tenant's own payments.
func (c *Client) ListTenantPayments(ctx context.Context) ([]model.Payment, error) {
	return list[model.Payment](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/tenant/payments",
	})
}

// ListOwnerPayments fetches payments received for the owner's houses.
func (c *Client) ListOwnerPayments(ctx context.Context) ([]model.Payment, error) {
	return list[model.Payment](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/house-owner/payments",
	})
}
