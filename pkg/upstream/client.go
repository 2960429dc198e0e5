package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the external portfolio API. All authenticated calls carry
// the session's bearer token; responses are never cached by the transport.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("component", "upstream").Logger(),
	}
}

// Response is one upstream reply. Raw always holds the full body text; Body
// is the parsed JSON object, nil when the body was not a JSON object. The
// body is read once up front so it can be inspected both as JSON and as
// text without consuming the stream irrecoverably.
type Response struct {
	Status int
	Body   map[string]any
	Raw    string
}

// Message pulls the upstream's own error message out of the body, if any.
func (r *Response) Message() string {
	if r.Body != nil {
		if m, ok := r.Body["message"].(string); ok {
			return m
		}
	}
	return ""
}

// GetJSON performs an unauthenticated GET.
func (c *Client) GetJSON(ctx context.Context, path string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, "")
}

// PostJSON performs a JSON POST, used for login.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, "")
}

// SendMultipart sends a mutation payload: a JSON-encoded "data" field plus
// an optional binary "thumbnail" part.
func (c *Client) SendMultipart(ctx context.Context, method, path, token, data string, thumbnail *multipart.FileHeader) (*Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("data", data); err != nil {
		return nil, err
	}
	if thumbnail != nil {
		src, err := thumbnail.Open()
		if err != nil {
			return nil, err
		}
		part, err := w.CreateFormFile("thumbnail", thumbnail.Filename)
		if err != nil {
			src.Close()
			return nil, err
		}
		if _, err := io.Copy(part, src); err != nil {
			src.Close()
			return nil, err
		}
		src.Close()
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, token)
}

// Delete performs an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path, token string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token)
}

func (c *Client) do(req *http.Request, token string) (*Response, error) {
	req.Header.Set("Cache-Control", "no-store")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("upstream call failed")
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	out := &Response{Status: res.StatusCode, Raw: string(raw)}
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err == nil {
		out.Body = parsed
	}
	return out, nil
}
