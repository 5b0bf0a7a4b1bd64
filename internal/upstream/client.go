// Package upstream talks to the deenislamic.com time-service that
// publishes the authoritative Ramadan Seheri/Iftar schedule.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the production time-service endpoint.
const DefaultBaseURL = "https://services.deenislamic.com/api/SeheriIftarTime"

const requestTimeout = 10 * time.Second

// ErrUnavailable classifies any network error, timeout or non-2xx
// status from the time-service. Callers recover by switching to the
// local approximation.
var ErrUnavailable = errors.New("upstream time-service unavailable")

// Client issues single-attempt schedule requests with a bounded
// timeout. Retries are deliberately left to callers; none exist today.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client against the given base URL, falling back
// to the production endpoint when empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
	}
}

type scheduleRequest struct {
	FirstDate string `json:"firstDate"`
	Location  string `json:"location"`
	Language  string `json:"language"`
}

// Fetch requests the schedule starting at the given ISO date for a
// district and returns the raw response body. Failures wrap
// ErrUnavailable.
func (c *Client) Fetch(ctx context.Context, date, districtID string) ([]byte, error) {
	body, err := json.Marshal(scheduleRequest{
		FirstDate: date,
		Location:  districtID,
		Language:  "bn",
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal schedule request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/RamadanSeheriIftarTime", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build schedule request")
	}
	req.Header.Set("accept", "application/json, text/plain, */*")
	req.Header.Set("accept-language", "en-US")
	req.Header.Set("client", "3")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("Referer", "https://deenislamic.com/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrapf(ErrUnavailable, "status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "read body: %v", err)
	}
	return raw, nil
}
