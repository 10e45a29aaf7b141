// Package api is the folio REST client. Every non-2xx response is
// normalized into the Error taxonomy; no call is ever retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TokenSource supplies the bearer token for protected calls and is told
// when the server rejects it, so the owning session can clear itself.
type TokenSource interface {
	Token() string
	Invalidate()
}

// Client is the folio API client.
type Client struct {
	baseURL    string
	creds      TokenSource
	httpClient *http.Client
}

// New creates a new API client. creds may be nil for public-only use.
func New(baseURL string, creds TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; the session layer owns persistence.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/api/login", body, &out); err != nil {
		return "", fmt.Errorf("api.Login: %w", err)
	}
	return out.AccessToken, nil
}

// Check probes a protected endpoint to validate the current token.
func (c *Client) Check(ctx context.Context) error {
	if err := c.get(ctx, "/api/auth/check", nil); err != nil {
		return fmt.Errorf("api.Check: %w", err)
	}
	return nil
}

// ListProjects fetches projects, optionally narrowed server-side.
func (c *Client) ListProjects(ctx context.Context, opts ProjectListOptions) ([]Project, error) {
	params := url.Values{}
	if opts.Featured {
		params.Set("featured", "true")
	}
	if opts.Tag != "" {
		params.Set("tag", opts.Tag)
	}
	path := "/api/projects"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var projects []Project
	if err := c.get(ctx, path, &projects); err != nil {
		return nil, fmt.Errorf("api.ListProjects: %w", err)
	}
	return projects, nil
}

// GetProject fetches a single project by ID.
func (c *Client) GetProject(ctx context.Context, id int) (*Project, error) {
	var project Project
	if err := c.get(ctx, "/api/projects/"+strconv.Itoa(id), &project); err != nil {
		return nil, fmt.Errorf("api.GetProject: %w", err)
	}
	return &project, nil
}

// CreateProject creates a project and returns the server's copy.
func (c *Client) CreateProject(ctx context.Context, payload ProjectPayload) (*Project, error) {
	var created Project
	if err := c.doRequest(ctx, http.MethodPost, "/api/projects", payload, &created); err != nil {
		return nil, fmt.Errorf("api.CreateProject: %w", err)
	}
	return &created, nil
}

// UpdateProject updates a project and returns the server's copy.
func (c *Client) UpdateProject(ctx context.Context, id int, payload ProjectPayload) (*Project, error) {
	var updated Project
	if err := c.doRequest(ctx, http.MethodPut, "/api/projects/"+strconv.Itoa(id), payload, &updated); err != nil {
		return nil, fmt.Errorf("api.UpdateProject: %w", err)
	}
	return &updated, nil
}

// DeleteProject deletes a project by ID.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/projects/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.DeleteProject: %w", err)
	}
	return nil
}

// ListSkills fetches skills, optionally filtered by category.
func (c *Client) ListSkills(ctx context.Context, category string) ([]Skill, error) {
	path := "/api/skills"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var skills []Skill
	if err := c.get(ctx, path, &skills); err != nil {
		return nil, fmt.Errorf("api.ListSkills: %w", err)
	}
	return skills, nil
}

// CreateSkill creates a skill and returns the server's copy.
func (c *Client) CreateSkill(ctx context.Context, payload SkillPayload) (*Skill, error) {
	var created Skill
	if err := c.doRequest(ctx, http.MethodPost, "/api/skills", payload, &created); err != nil {
		return nil, fmt.Errorf("api.CreateSkill: %w", err)
	}
	return &created, nil
}

// UpdateSkill updates a skill and returns the server's copy.
func (c *Client) UpdateSkill(ctx context.Context, id int, payload SkillPayload) (*Skill, error) {
	var updated Skill
	if err := c.doRequest(ctx, http.MethodPut, "/api/skills/"+strconv.Itoa(id), payload, &updated); err != nil {
		return nil, fmt.Errorf("api.UpdateSkill: %w", err)
	}
	return &updated, nil
}

// DeleteSkill deletes a skill by ID.
func (c *Client) DeleteSkill(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/skills/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.DeleteSkill: %w", err)
	}
	return nil
}

// ListTags returns the tag reference set.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.get(ctx, "/api/tags", &tags); err != nil {
		return nil, fmt.Errorf("api.ListTags: %w", err)
	}
	return tags, nil
}

// ListContacts returns all contact messages, newest first.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if err := c.get(ctx, "/api/contacts", &contacts); err != nil {
		return nil, fmt.Errorf("api.ListContacts: %w", err)
	}
	return contacts, nil
}

// MarkContactRead flips a contact's read flag on the server.
func (c *Client) MarkContactRead(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/contacts/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.MarkContactRead: %w", err)
	}
	return nil
}

// DeleteContact deletes a contact message by ID.
func (c *Client) DeleteContact(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/contacts/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("api.DeleteContact: %w", err)
	}
	return nil
}

// SubmitContact posts the public contact form.
func (c *Client) SubmitContact(ctx context.Context, payload ContactPayload) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/contact", payload, nil); err != nil {
		return fmt.Errorf("api.SubmitContact: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return netError(err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		message := ""
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			message = apiErr.Message
		}

		normalized := classify(resp.StatusCode, message)
		if normalized.Kind == KindAuth && c.creds != nil {
			c.creds.Invalidate()
		}
		return normalized
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
