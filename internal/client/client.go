// Package client wraps the REST API for programs that consume the reminder
// list. It keeps one cached copy of the list and discards it after every
// successful mutation, so the next read fetches fresh data instead of
// merging the mutation's result locally.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/asharma/money-reminders/internal/model"
)

// Client talks to a running reminder service.
type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.Mutex
	cached []model.Reminder
	valid  bool
}

// New creates a client for the service at the given base URL, for example
// "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// Reminders returns the cached reminder list, fetching it from the service
// when the cache has been invalidated. A failed fetch leaves the cache
// untouched.
func (c *Client) Reminders() ([]model.Reminder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.cached, nil
	}
	res, err := c.http.Get(c.baseURL + "/api/reminders")
	if err != nil {
		return nil, fmt.Errorf("fetch reminders: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, responseError(res)
	}
	var reminders []model.Reminder
	if err := json.NewDecoder(res.Body).Decode(&reminders); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}
	c.cached = reminders
	c.valid = true
	return reminders, nil
}

// Invalidate discards the cached list so the next call to Reminders fetches
// fresh data.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.valid = false
}

// Create submits a new reminder and returns the persisted row. The cached
// list is invalidated on success.
func (c *Client) Create(in model.ReminderInput) (model.Reminder, error) {
	return c.mutate(http.MethodPost, "/api/reminders", &in, http.StatusCreated)
}

// Update submits a partial update for the reminder with the given id and
// returns the row after the merge. The cached list is invalidated on
// success.
func (c *Client) Update(id int64, in model.ReminderInput) (model.Reminder, error) {
	return c.mutate(http.MethodPatch, fmt.Sprintf("/api/reminders/%d", id), &in, http.StatusOK)
}

// Delete removes the reminder with the given id. The cached list is
// invalidated on success.
func (c *Client) Delete(id int64) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+fmt.Sprintf("/api/reminders/%d", id), nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		return responseError(res)
	}
	c.Invalidate()
	return nil
}

// mutate sends a JSON body, expects the given status code and decodes the
// returned reminder. On any failure the cache stays as it is.
func (c *Client) mutate(method, path string, in *model.ReminderInput, want int) (model.Reminder, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return model.Reminder{}, err
	}
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return model.Reminder{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()
	if res.StatusCode != want {
		return model.Reminder{}, responseError(res)
	}
	var reminder model.Reminder
	if err := json.NewDecoder(res.Body).Decode(&reminder); err != nil {
		return model.Reminder{}, fmt.Errorf("decode reminder: %w", err)
	}
	c.Invalidate()
	return reminder, nil
}

// responseError turns a non-success response into a human-readable error,
// preferring the message the service put into the body.
func responseError(res *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return errors.New(body.Message)
	}
	return fmt.Errorf("unexpected status %d", res.StatusCode)
}
