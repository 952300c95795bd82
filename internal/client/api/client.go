// Package api is the HTTP client for the Messagely backend. It owns the
// session token: Login and Register store the token returned by the server
// and every later call sends it as a bearer credential.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// IsLoggedIn reports whether a session token is held.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// Logout discards the session token.
func (c *Client) Logout() {
	c.token = ""
}

type errorEnvelope struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs a request and decodes the JSON response into out (when out is
// non-nil). Transport failures map to ErrUnavailable; non-2xx statuses map
// to the package sentinels with the server's message attached.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var env errorEnvelope
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error.Message != "" {
		message = env.Error.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrServer, message)
	default:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	}
}

type credentials struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type tokenEnvelope struct {
	Token string `json:"token"`
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, username string, password []byte, firstName, lastName, phone string) error {
	var env tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/register", credentials{
		Username:  username,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}, &env)
	if err != nil {
		return err
	}
	c.token = env.Token
	return nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, username string, password []byte) error {
	var env tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/login", credentials{
		Username: username,
		Password: string(password),
	}, &env)
	if err != nil {
		return err
	}
	c.token = env.Token
	return nil
}

// ListUsers returns the public profiles of all registered users.
func (c *Client) ListUsers(ctx context.Context) ([]Profile, error) {
	var env struct {
		Users []Profile `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

// GetUser returns the full account record for username. The server only
// allows this for the authenticated user's own profile.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	var env struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+username, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// SendMessage sends body to the named recipient.
func (c *Client) SendMessage(ctx context.Context, to, body string) (*Message, error) {
	payload := struct {
		ToUsername string `json:"to_username"`
		Body       string `json:"body"`
	}{ToUsername: to, Body: body}

	var env struct {
		Message Message `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/messages", payload, &env); err != nil {
		return nil, err
	}
	return &env.Message, nil
}

// GetMessage returns a single message with both endpoint profiles.
func (c *Client) GetMessage(ctx context.Context, id int64) (*MessageDetail, error) {
	var env struct {
		Message MessageDetail `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/messages/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Message, nil
}

// MarkRead marks a received message as read.
func (c *Client) MarkRead(ctx context.Context, id int64) (*ReadReceipt, error) {
	var env struct {
		Message ReadReceipt `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/messages/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Message, nil
}

// ListSent returns the messages username sent.
func (c *Client) ListSent(ctx context.Context, username string) ([]SentMessage, error) {
	var env struct {
		Messages []SentMessage `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+username+"/from", nil, &env); err != nil {
		return nil, err
	}
	return env.Messages, nil
}

// ListReceived returns the messages username received.
func (c *Client) ListReceived(ctx context.Context, username string) ([]ReceivedMessage, error) {
	var env struct {
		Messages []ReceivedMessage `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+username+"/to", nil, &env); err != nil {
		return nil, err
	}
	return env.Messages, nil
}
