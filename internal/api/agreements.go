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

// AgreementRequest is the payload for creating or updating a rental
// agreement (administrator only).
type AgreementRequest struct {
	BookingNo    int    `json:"booking_no"`
	HouseID      int    `json:"house_id"`
	HouseOwnerID int    `json:"house_owner_id"`
	UserEmail    string `json:"user_email"`
	Remember     string `json:"remember,omitempty"`
}

// ListAgreements fetches agreements visible to the caller.
func (c *Client) ListAgreements(ctx context.Context) ([]model.Agreement, error) {
	return list[model.Agreement](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/agreements",
	})
}

// GetAgreement fetches a single agreement by id.
func (c *Client) GetAgreement(ctx context.Context, id int) (*model.Agreement, error) {
	var a model.Agreement
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/agreements/%d", id),
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAgreement issues a new agreement.
func (c *Client) CreateAgreement(ctx context.Context, req AgreementRequest) (*model.Agreement, error) {
	var a model.Agreement
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/agreements",
		Body:   req,
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAgreement rewrites an agreement.
func (c *Client) UpdateAgreement(ctx context.Context, id int, req AgreementRequest) (*model.Agreement, error) {
	var a model.Agreement
	err := c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/agreements/%d", id),
		Body:   req,
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAgreement removes an agreement.
func (c *Client) DeleteAgreement(ctx context.Context, id int) error {
	return c.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/agreements/%d", id),
	}, nil)
}

// ListOwnerAgreements fetches agreements covering the owner's houses.
func (c *Client) ListOwnerAgreements(ctx context.Context) ([]model.Agreement, error) {
	return list[model.Agreement](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/house-owner/agreements",
	})
}
