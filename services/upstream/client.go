package upstream

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 15 * time.Second

// Client talks to the remote booking API. Every request carries the active
// language as both a query parameter and a header; state-changing requests
// additionally carry the anti-forgery token, and authenticated reads a
// bearer token.
type Client struct {
	HTTP    *http.Client
	BaseURL string

	mu        sync.Mutex
	csrfToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, lang string, query url.Values, body any) (*http.Request, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(path, "/")

	if query == nil {
		query = url.Values{}
	}
	if lang != "" {
		query.Set("lang", lang)
	}
	base.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("X-Language", lang)
	}
	return req, nil
}

// doJSON runs the request and decodes a 2xx body into dest. Non-2xx bodies
// are decoded for their {"error": "..."} message and classified. A 403 on a
// state-changing call drops the cached anti-forgery token so the next
// user-initiated attempt fetches a fresh one.
func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusForbidden {
			c.invalidateCSRF()
		}
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &payload)
		if payload.Error == "" {
			payload.Error = strings.TrimSpace(string(raw))
		}
		return classify(resp.StatusCode, payload.Error)
	}

	if dest == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func (c *Client) get(ctx context.Context, path, lang string, query url.Values, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, lang, query, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

// post attaches the anti-forgery token before running a state-changing call.
func (c *Client) post(ctx context.Context, path, lang string, body, dest any) error {
	token, err := c.csrf(ctx)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, lang, nil, body)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("X-CSRFToken", token)
	}
	return c.doJSON(req, dest)
}

// csrf returns the cached anti-forgery token, fetching one from the token
// endpoint when none is cached. A missing endpoint is tolerated: some
// deployments validate the token from a cookie instead.
func (c *Client) csrf(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.csrfToken
	c.mu.Unlock()
	if token != "" {
		return token, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "auth/csrf/", "", nil, nil)
	if err != nil {
		return "", err
	}
	var payload struct {
		CSRFToken string `json:"csrf_token"`
	}
	if err := c.doJSON(req, &payload); err != nil {
		if IsKind(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	c.mu.Lock()
	c.csrfToken = payload.CSRFToken
	c.mu.Unlock()
	return payload.CSRFToken, nil
}

func (c *Client) invalidateCSRF() {
	c.mu.Lock()
	c.csrfToken = ""
	c.mu.Unlock()
}
