// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestDoSetsHeaders(t *testing.T) {
	var got http.Header
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok-123"))
	var out struct {
		ID int `json:"id"`
	}
	err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/bookings",
		Body:   map[string]int{"house_id": 7},
	}, &out)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q", gotMethod)
	}
	if got.Get("Accept") != "application/json" {
		t.Fatalf("Accept = %q", got.Get("Accept"))
	}
	if got.Get("Content-Type") != "application/json" {
		t.Fatalf("Content-Type = %q", got.Get("Content-Type"))
	}
	if got.Get("Authorization") != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", got.Get("Authorization"))
	}
	if out.ID != 1 {
		t.Fatalf("decoded id = %d", out.ID)
	}
}

func TestDoUnauthenticatedOmitsBearer(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken(""))
	if err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/houses"}, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if _, present := got["Authorization"]; present {
		t.Fatalf("unauthenticated request carried an Authorization header")
	}
	// A bare GET must not claim a content type.
	if _, present := got["Content-Type"]; present {
		t.Fatalf("bodyless request carried a Content-Type header")
	}
}

func TestDoMultipart(t *testing.T) {
	var contentType string
	var fields map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		fields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			fields[k] = v[0]
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 9}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	form := HouseForm{
		Address:   "12 Elm Street",
		City:      "Berlin",
		Price:     850,
		Rooms:     3,
		HouseType: "apartment",
		Image:     strings.NewReader("fakepng"),
		ImageName: "front.png",
	}
	h, err := c.UpdateHouse(context.Background(), 9, form)
	if err != nil {
		t.Fatalf("UpdateHouse: %v", err)
	}
	if h.ID != 9 {
		t.Fatalf("decoded id = %d", h.ID)
	}

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		t.Fatalf("Content-Type = %q", contentType)
	}
	if fields["_method"] != "PUT" {
		t.Fatalf("update did not spoof _method=PUT: %v", fields)
	}
	if fields["address"] != "12 Elm Street" || fields["price"] != "850" || fields["rooms"] != "3" {
		t.Fatalf("form fields wrong: %v", fields)
	}
}

func TestDoDecodesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "The from date field is required."}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/bookings"}, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("Status = %d", apiErr.Status)
	}
	if apiErr.Message != "The from date field is required." {
		t.Fatalf("Message = %q", apiErr.Message)
	}
}

func TestDoGenericErrorForNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/houses"}, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Fatalf("Status = %d", apiErr.Status)
	}
	if apiErr.Message != genericErrorMessage {
		t.Fatalf("Message = %q, want generic", apiErr.Message)
	}
}

func TestDoEmptySuccessLeavesOutUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	out := struct {
		ID int `json:"id"`
	}{ID: 42}
	if err := c.Do(context.Background(), Request{Method: http.MethodDelete, Path: "/bookings/1"}, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if out.ID != 42 {
		t.Fatalf("empty success mutated out: %+v", out)
	}
}

func TestDoRejectsMismatchedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[1, 2, 3]`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	var out struct{ ID int }
	err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/houses/1"}, &out)
	if err == nil || !strings.Contains(err.Error(), "unexpected response shape") {
		t.Fatalf("expected shape error, got %v", err)
	}
}

func TestListUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"id": 1}, {"id": 2}], "current_page": 1, "total": 2}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	houses, err := c.ListHouses(context.Background(), HouseFilters{})
	if err != nil {
		t.Fatalf("ListHouses: %v", err)
	}
	if len(houses) != 2 || houses[0].ID != 1 || houses[1].ID != 2 {
		t.Fatalf("unexpected houses: %+v", houses)
	}
}

func TestHouseFiltersStripEmpty(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.ListHouses(context.Background(), HouseFilters{City: "Berlin", Rooms: "  ", MaxPrice: "900"})
	if err != nil {
		t.Fatalf("ListHouses: %v", err)
	}
	if !strings.Contains(query, "house_city=Berlin") || !strings.Contains(query, "price=900") {
		t.Fatalf("query missing filters: %q", query)
	}
	if strings.Contains(query, "rooms") {
		t.Fatalf("blank filter leaked into query: %q", query)
	}
}

func TestRoleScopedAuthPaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "t", "tenant": {"id": 1}}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	ctx := context.Background()
	if _, err := c.Login(ctx, "tenant", Credentials{EmailAddress: "a@b.c", Password: "x"}); err != nil {
		t.Fatalf("Login tenant: %v", err)
	}
	if _, err := c.Login(ctx, "house_owner", Credentials{EmailAddress: "a@b.c", Password: "x"}); err != nil {
		t.Fatalf("Login owner: %v", err)
	}
	if _, err := c.Login(ctx, "administrator", Credentials{Username: "root", Password: "x"}); err != nil {
		t.Fatalf("Login admin: %v", err)
	}

	want := []string{"/tenant/login", "/house-owner/login", "/admin/login"}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("path[%d] = %q, want %q", i, paths[i], p)
		}
	}
}
