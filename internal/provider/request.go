package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"mood-report/internal/domain"
)

// browserUserAgent is required by endpoints that reject non-browser
// clients (CNN, Qieman).
const browserUserAgent = "Mozilla/5.0"

// doRequest performs one GET with at most one retry on a transient
// transport failure. Non-success statuses are never retried here: deciding
// what to do with a dead source belongs to the fallback chain.
func doRequest(ctx context.Context, client *http.Client, url string, header http.Header) ([]byte, error) {
	body, err := doOnce(ctx, client, url, header)
	if err != nil && errors.Is(err, domain.ErrTransport) && ctx.Err() == nil {
		body, err = doOnce(ctx, client, url, header)
	}
	return body, err
}

func doOnce(ctx context.Context, client *http.Client, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d: %s", domain.ErrBadStatus, resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
