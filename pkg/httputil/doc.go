// Package httputil fetches interchange documents over HTTP.
//
// # Overview
//
// The CLI accepts http and https URLs wherever it reads a document. This
// package performs the download:
//
//   - [Fetch]: GET a document with a size limit and automatic retries
//   - [Retry]: Automatic retry with exponential backoff
//
// # Retries
//
// [Fetch] wraps network failures and 5xx responses in [RetryableError], so
// [Retry] attempts them again with a doubling delay. Client errors (4xx) are
// returned immediately:
//
//	data, err := httputil.Fetch(ctx, nil, "https://example.org/graph.xmcda2")
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // the server has no such document
//	}
//
// Use [IsURL] to decide whether a command argument names a remote document.
package httputil
