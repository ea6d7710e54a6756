// Package netx holds small HTTP helpers shared by the probe client.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Get fetches url and returns the body of a 200 response along with its
// headers. The transport's transparent gzip is left on, so a compressed
// body arrives decoded.
func Get(ctx context.Context, client *http.Client, url string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("request failed: %s; body: %s", resp.Status, string(body))
	}
	return body, resp.Header, nil
}
