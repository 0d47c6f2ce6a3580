// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/toeirei/rentmaster/internal/model"
)

// HouseForm carries the fields for creating or updating a house listing.
// House mutations go over multipart because they may carry an image file;
// the server expects form fields, not JSON.
type HouseForm struct {
	Address      string
	City         string
	District     string
	State        string
	Descriptions string
	Price        float64
	HouseType    string
	Rooms        int
	Furnitures   string
	Variation    string

	// Image is the optional listing photo. ImageName is the filename sent
	// in the form part.
	Image     io.Reader
	ImageName string
}

func (f HouseForm) fields() map[string]string {
	fields := map[string]string{
		"address":        f.Address,
		"house_city":     f.City,
		"house_district": f.District,
		"house_state":    f.State,
		"house_type":     f.HouseType,
		"price":          strconv.FormatFloat(f.Price, 'f', -1, 64),
		"rooms":          strconv.Itoa(f.Rooms),
	}
	if f.Descriptions != "" {
		fields["descriptions"] = f.Descriptions
	}
	if f.Furnitures != "" {
		fields["furnitures"] = f.Furnitures
	}
	if f.Variation != "" {
		fields["variation"] = f.Variation
	}
	return fields
}

func (f HouseForm) multipart(extra map[string]string) *Multipart {
	fields := f.fields()
	for k, v := range extra {
		fields[k] = v
	}
	m := &Multipart{Fields: fields}
	if f.Image != nil {
		m.FileField = "image"
		m.FileName = f.ImageName
		m.File = f.Image
	}
	return m
}

// HouseFilters are the optional query parameters for the public house
// listing. Empty values are stripped before the request is issued, matching
// the server's expectation of absent rather than blank parameters.
type HouseFilters struct {
	City      string
	District  string
	State     string
	HouseType string
	Rooms     string
	MaxPrice  string
}

func (f HouseFilters) query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if strings.TrimSpace(value) != "" {
			q.Set(key, value)
		}
	}
	set("house_city", f.City)
	set("house_district", f.District)
	set("house_state", f.State)
	set("house_type", f.HouseType)
	set("rooms", f.Rooms)
	set("price", f.MaxPrice)
	return q
}

// ListHouses fetches the public house listing. Filtering and sorting are
// the server's job; the client only forwards the parameters.
func (c *Client) ListHouses(ctx context.Context, filters HouseFilters) ([]model.House, error) {
	return list[model.House](ctx, c, Request{
		Method: http.MethodGet,
		Path:   "/houses",
		Query:  filters.query(),
	})
}

// GetHouse fetches a single house by id.
func (c *Client) GetHouse(ctx context.Context, id int) (*model.House, error) {
	var h model.House
	err := c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/houses/%d", id),
	}, &h)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// CreateHouse lists a new property (house owner only).
func (c *Client) CreateHouse(ctx context.Context, form HouseForm) (*model.House, error) {
	var h model.House
	err := c.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      "/houses",
		Multipart: form.multipart(nil),
	}, &h)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHouse updates a listing. The server routes multipart updates
// through POST with a _method=PUT form field, since multipart PUT bodies
// are not parsed by its framework.
func (c *Client) UpdateHouse(ctx context.Context, id int, form HouseForm) (*model.House, error) {
	var h model.House
	err := c.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      fmt.Sprintf("/houses/%d", id),
		Multipart: form.multipart(map[string]string{"_method": "PUT"}),
	}, &h)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHouse removes a listing (house owner only). The server answers with
// an empty body.
func (c *Client) DeleteHouse(ctx context.Context, id int) error {
	return c.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/houses/%d", id),
	}, nil)
}
