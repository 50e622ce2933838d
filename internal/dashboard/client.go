package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a non-2xx answer carrying the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: %s (%s, status %d)", e.Message, e.Code, e.Status)
}

// HTTPClient talks to the JSON API with a bearer token.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewHTTPClient(baseURL, token string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

type personsEnvelope struct {
	Persons []Person `json:"persons"`
}

type resolveEnvelope struct {
	Success bool    `json:"success"`
	Message Message `json:"message"`
}

type loginEnvelope struct {
	Token string `json:"token"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Login exchanges credentials for a bearer token.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out loginEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) ListPersons(ctx context.Context) ([]Person, error) {
	var out personsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/person", nil, &out); err != nil {
		return nil, err
	}
	return out.Persons, nil
}

func (c *HTTPClient) CreatePerson(ctx context.Context, name string) (Person, error) {
	var out personsEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/person", map[string]string{"name": name}, &out); err != nil {
		return Person{}, err
	}
	if len(out.Persons) == 0 {
		return Person{}, fmt.Errorf("create person: empty response")
	}
	return out.Persons[0], nil
}

func (c *HTTPClient) DeletePerson(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/api/person?slug="+url.QueryEscape(slug), nil, nil)
}

func (c *HTTPClient) ResolveMessage(ctx context.Context, id string) (Message, error) {
	var out resolveEnvelope
	if err := c.do(ctx, http.MethodPatch, "/api/message?id="+url.QueryEscape(id), nil, &out); err != nil {
		return Message{}, err
	}
	return out.Message, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
