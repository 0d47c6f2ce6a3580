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

// FeedbackRequest is the payload for leaving feedback on a house.
type FeedbackRequest struct {
	HouseID int    `json:"house_id"`
	Message string `json:"message"`
	Rating  int    `json:"rating,omitempty"`
}

// CreateFeedback leaves a review for a house (tenant only).
func (c *Client) CreateFeedback(ctx context.Context, req FeedbackRequest) (*model.Feedback, error) {
	var f model.Feedback
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/feedback",
		Body:   req,
	}, &f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFeedback fetches a single feedback entry by id.
func (c *Client) GetFeedback(ctx context.Context, id int) (*model.Feedback, error) {
	var f model.Feedback
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/feedback/%d", id),
	}, &f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListOwnerFeedback fetches feedback left on the owner's houses.
func (c *Client) ListOwnerFeedback(ctx context.Context) ([]model.Feedback, error) {
	return list[model.Feedback](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/house-owner/feedback",
	})
}
