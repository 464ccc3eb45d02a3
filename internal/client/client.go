// Package client is the REST client of the store contract. It translates
// transport outcomes back into the domain error taxonomy so callers never
// see raw HTTP details.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clubhub-backend/internal/domain"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// do issues one request and maps the response onto the domain error taxonomy.
// Network failures come back as TransportError and are never retried here;
// retrying a decision could replay it.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	var envelope errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	return mapError(resp.StatusCode, envelope.Error)
}

func mapError(status int, body errorBody) error {
	switch status {
	case http.StatusNotFound:
		if body.Message != "" {
			return fmt.Errorf("%s: %w", body.Message, domain.ErrNotFound)
		}
		return domain.ErrNotFound
	case http.StatusConflict:
		if body.Code == "CAPACITY_EXCEEDED" {
			return &domain.CapacityExceededError{Msg: body.Message}
		}
		return &domain.ConflictError{Msg: body.Message}
	case http.StatusBadRequest:
		return &domain.ValidationError{Msg: body.Message}
	}
	if body.Message != "" {
		return fmt.Errorf("store returned status %d: %s", status, body.Message)
	}
	return fmt.Errorf("store returned status %d", status)
}

type applicantPage struct {
	Applicants []domain.Applicant `json:"applicants"`
	Total      int32              `json:"total"`
	Page       int32              `json:"page"`
	PageSize   int32              `json:"page_size"`
}

func (c *Client) ListApplicants(ctx context.Context, page, size int32) ([]domain.Applicant, int32, error) {
	var result applicantPage
	path := fmt.Sprintf("/admin/users?page=%d&size=%d", page, size)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, 0, err
	}
	return result.Applicants, result.Total, nil
}

func (c *Client) Approve(ctx context.Context, applicantID int32) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/%d/approve", applicantID), nil, nil)
}

func (c *Client) Reject(ctx context.Context, applicantID int32) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/%d/reject", applicantID), nil, nil)
}

func (c *Client) Reset(ctx context.Context, applicantID int32) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/%d/reset", applicantID), nil, nil)
}

func (c *Client) Roster(ctx context.Context) (*domain.TeamRoster, error) {
	var result domain.TeamRoster
	if err := c.do(ctx, http.MethodGet, "/ideas/roster", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListReceived(ctx context.Context, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	var result []domain.EnrollmentRequest
	path := fmt.Sprintf("/enrollments/received?scheduleType=%s", schedule)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ListSent(ctx context.Context, schedule domain.ScheduleType) ([]domain.EnrollmentRequest, error) {
	var result []domain.EnrollmentRequest
	path := fmt.Sprintf("/enrollments/sent?scheduleType=%s", schedule)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Readabilities(ctx context.Context) (map[domain.ScheduleType]bool, error) {
	var result map[domain.ScheduleType]bool
	if err := c.do(ctx, http.MethodGet, "/enrollments/sent/readabilities", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

type determineBody struct {
	Decision domain.EnrollmentDecision `json:"decision"`
}

func (c *Client) Determine(ctx context.Context, enrollmentID int32, decision domain.EnrollmentDecision) error {
	path := fmt.Sprintf("/enrollments/%d/determine", enrollmentID)
	return c.do(ctx, http.MethodPost, path, determineBody{Decision: decision}, nil)
}

func (c *Client) Cancel(ctx context.Context, enrollmentID int32) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/enrollments/%d", enrollmentID), nil, nil)
}

func (c *Client) RemoveMember(ctx context.Context, ideaID, memberID int32) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/ideas/%d/members/%d", ideaID, memberID), nil, nil)
}
