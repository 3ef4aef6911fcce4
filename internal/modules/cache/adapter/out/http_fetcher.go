package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"examprep/internal/modules/cache/domain"
	cacheout "examprep/internal/modules/cache/port/out"
)

const maxResponseBytes = 32 << 20

// ErrResponseTooLarge reports a body over the fetcher's limit. The response
// is dropped rather than cached cut short.
var ErrResponseTooLarge = errors.New("response body exceeds size limit")

var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type HTTPFetcher struct {
	client *http.Client
	limit  int64
}

func NewHTTPFetcher(client *http.Client) cacheout.Fetcher {
	return NewHTTPFetcherWithLimit(client, maxResponseBytes)
}

// NewHTTPFetcherWithLimit caps response bodies at limit bytes.
func NewHTTPFetcherWithLimit(client *http.Client, limit int64) cacheout.Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if limit <= 0 {
		limit = maxResponseBytes
	}
	return &HTTPFetcher{client: client, limit: limit}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, req domain.Request) (domain.Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	out, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return domain.Response{}, fmt.Errorf("build request: %w", err)
	}
	if req.Header != nil {
		out.Header = req.Header.Clone()
	}
	stripHop(out.Header)
	resp, err := f.client.Do(out)
	if err != nil {
		return domain.Response{}, fmt.Errorf("fetch %s: %w", req.Key(), err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			_ = cerr
		}
	}()
	payload, err := io.ReadAll(io.LimitReader(resp.Body, f.limit+1))
	if err != nil {
		return domain.Response{}, fmt.Errorf("read %s: %w", req.Key(), err)
	}
	if int64(len(payload)) > f.limit {
		return domain.Response{}, fmt.Errorf("read %s: %w", req.Key(), ErrResponseTooLarge)
	}
	header := resp.Header.Clone()
	stripHop(header)
	return domain.Response{Status: resp.StatusCode, Header: header, Body: payload}, nil
}

func stripHop(h http.Header) {
	for _, k := range hopHeaders {
		h.Del(k)
	}
}
