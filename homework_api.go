package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// HomeworkAPI fetches homework statuses from the review service.
type HomeworkAPI struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewHomeworkAPI(cfg *Config) *HomeworkAPI {
	return &HomeworkAPI{
		endpoint: cfg.Endpoint,
		token:    cfg.PracticumToken,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// Fetch asks for every status change since from and returns the body as is.
func (a *HomeworkAPI) Fetch(ctx context.Context, from Cursor) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("from_date", from.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Endpoint: a.endpoint, Params: params, Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+a.token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: a.endpoint, Params: params, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UnexpectedStatusError{Endpoint: a.endpoint, Params: params, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: a.endpoint, Params: params, Err: err}
	}
	return data, nil
}
