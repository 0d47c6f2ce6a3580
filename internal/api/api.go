// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package api is the authorized request gateway to the rental service. It
// turns a request descriptor into an HTTP call carrying the current
// session's bearer token and normalizes the outcome into a decoded value or
// a typed *Error. The gateway never mutates the session; it only reads the
// token through the TokenSource interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// genericErrorMessage substitutes for the server's error message when the
// error body is not decodable JSON (an HTML error page, an empty body).
const genericErrorMessage = "network error or non-JSON response"

// TokenSource supplies the current bearer token. An empty string means
// unauthenticated and suppresses the Authorization header.
type TokenSource interface {
	Token() string
}

// Multipart is an opaque binary body for file-upload requests. The form
// fields travel alongside the file; the multipart writer owns the
// content-type (it sets the boundary), so the gateway must not attach one.
type Multipart struct {
	Fields    map[string]string
	FileField string
	FileName  string
	File      io.Reader
}

// Request describes one call to the service. Body and Multipart are
// mutually exclusive: a structured Body is serialized as JSON, a Multipart
// payload passes through unchanged.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Multipart *Multipart
}

// Error is the typed failure returned for every non-2xx response. Callers
// distinguish authorization (401/403) from validation (422) from server
// (5xx) failures by Status alone.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Client issues requests against a configured base endpoint.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// New returns a gateway for the given base endpoint, e.g.
// "http://localhost:8000/api". tokens may be nil for a client that only
// performs unauthenticated calls.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
	}
}

// SetHTTPClient replaces the underlying transport. Used by tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.httpc = h
}

// Do executes the request and decodes a JSON response body into out. A 2xx
// response with an empty or non-JSON body is an empty success: out is left
// untouched (deletes and logouts have no body). out may be nil when the
// caller expects none.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		// e.g. a 204 from a delete; an empty result, not a failure.
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		// A present-but-mismatched body is a defect to surface, not an
		// empty state.
		return fmt.Errorf("unexpected response shape: %w", err)
	}
	return nil
}

// build assembles the http.Request: URL, body and headers.
func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.Multipart != nil:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for k, v := range req.Multipart.Fields {
			if err := w.WriteField(k, v); err != nil {
				return nil, err
			}
		}
		if req.Multipart.File != nil {
			part, err := w.CreateFormFile(req.Multipart.FileField, req.Multipart.FileName)
			if err != nil {
				return nil, err
			}
			if _, err := io.Copy(part, req.Multipart.File); err != nil {
				return nil, err
			}
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		body = buf
		contentType = w.FormDataContentType()
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return httpReq, nil
}

// decodeError turns a non-2xx response into a *Error. The server sends
// {"message": "..."} on failures; anything else gets the generic message.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Message: genericErrorMessage}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	if payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = fmt.Sprintf("HTTP error: status %d", resp.StatusCode)
	}
	return apiErr
}

// ListEnvelope is the pagination wrapper the server puts around list
// responses.
type ListEnvelope[T any] struct {
	Success     bool   `json:"success,omitempty"`
	Data        []T    `json:"data"`
	Message     string `json:"message,omitempty"`
	CurrentPage int    `json:"current_page,omitempty"`
	LastPage    int    `json:"last_page,omitempty"`
	PerPage     int    `json:"per_page,omitempty"`
	Total       int    `json:"total,omitempty"`
}

// list is the shared helper for endpoints returning an enveloped slice.
func list[T any](ctx context.Context, c *Client, req Request) ([]T, error) {
	var env ListEnvelope[T]
	if err := c.Do(ctx, req, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
