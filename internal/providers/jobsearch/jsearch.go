package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const jsearchHost = "jsearch.p.rapidapi.com"

// JSearch is a client for the JSearch API on RapidAPI.
type JSearch struct {
	apiKey string
	base   string
	httpDo *http.Client
}

func NewJSearch(apiKey string) *JSearch {
	return &JSearch{
		apiKey: apiKey,
		base:   "https://" + jsearchHost,
		httpDo: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type searchResponse struct {
	Data []Result `json:"data"`
}

func (c *JSearch) Search(ctx context.Context, query string) ([]Result, error) {
	if c.apiKey == "" {
		return nil, errors.New("rapidapi key is empty")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("date_posted", "all")

	endpoint := fmt.Sprintf("%s/search?%s", c.base, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-host", jsearchHost)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("jsearch http %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
