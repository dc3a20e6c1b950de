package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/valdigraph/pkg/errors"
)

const (
	// MaxDocumentBytes bounds the size of a fetched document.
	MaxDocumentBytes = 32 << 20

	// DefaultTimeout bounds a single request when Fetch builds its own client.
	DefaultTimeout = 30 * time.Second

	fetchAttempts = 3
	fetchDelay    = 500 * time.Millisecond
)

// IsURL reports whether s is an http or https URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch downloads the document at url. A nil client uses one with
// [DefaultTimeout]. A 404 yields NOT_FOUND, other 4xx responses and bodies
// above [MaxDocumentBytes] yield INVALID_INPUT.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	var data []byte
	err := Retry(ctx, fetchAttempts, fetchDelay, func() error {
		var err error
		data, err = fetchOnce(ctx, client, url)
		return err
	})
	return data, err
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad document url %q", url)
	}
	req.Header.Set("Accept", "application/xml, application/json")

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: fmt.Errorf("fetch %s: %w", url, err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "document %s not found", url)
	case resp.StatusCode >= 500:
		return nil, &RetryableError{Err: fmt.Errorf("fetch %s: %s", url, resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return nil, errors.New(errors.ErrCodeInvalidInput, "fetch %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentBytes+1))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("read %s: %w", url, err)}
	}
	if len(data) > MaxDocumentBytes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document %s exceeds %d bytes", url, MaxDocumentBytes)
	}
	return data, nil
}
