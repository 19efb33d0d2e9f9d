package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/football-fixtures-service/internal/browse"
	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
)

type apiClient struct {
	host string
	http *http.Client
}

type apiError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *apiError) Error() string {
	msg := fmt.Sprintf("server returned %d", e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request " + e.RequestID + ")"
	}
	return msg
}

func (c *apiClient) matches(ctx context.Context, league string, page, width int) (browse.View, error) {
	q := url.Values{}
	q.Set("league", league)
	q.Set("page", strconv.Itoa(page))
	if width > 0 {
		q.Set("width", strconv.Itoa(width))
	}
	var view browse.View
	// 503 still carries a view describing the loading or failed phase.
	err := c.do(ctx, http.MethodGet, "/matches?"+q.Encode(), "", &view, http.StatusOK, http.StatusServiceUnavailable)
	return view, err
}

func (c *apiClient) leagues(ctx context.Context) ([]string, error) {
	var resp struct {
		Leagues []string `json:"leagues"`
	}
	err := c.do(ctx, http.MethodGet, "/leagues", "", &resp, http.StatusOK)
	return resp.Leagues, err
}

func (c *apiClient) match(ctx context.Context, id string) (matches.Match, error) {
	var m matches.Match
	err := c.do(ctx, http.MethodGet, "/matches/"+url.PathEscape(id), "", &m, http.StatusOK)
	return m, err
}

func (c *apiClient) reload(ctx context.Context, token string) (string, error) {
	var resp map[string]string
	if err := c.do(ctx, http.MethodPost, "/admin/reload", token, &resp, http.StatusOK, http.StatusAccepted); err != nil {
		return "", err
	}
	return resp["status"], nil
}

func (c *apiClient) probe(ctx context.Context, path string) (string, error) {
	var resp map[string]string
	if err := c.do(ctx, http.MethodGet, path, "", &resp, http.StatusOK); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return "not ok (" + apiErr.Message + ")", nil
		}
		return "", err
	}
	return resp["status"], nil
}

func (c *apiClient) do(ctx context.Context, method, path, token string, dest any, accept ...int) error {
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.host, "/")+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	for _, code := range accept {
		if resp.StatusCode == code {
			if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			return nil
		}
	}

	var body struct {
		Error     string `json:"error"`
		RequestID string `json:"requestId"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	return &apiError{Status: resp.StatusCode, Message: body.Error, RequestID: body.RequestID}
}
