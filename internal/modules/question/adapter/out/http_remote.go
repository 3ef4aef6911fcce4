package out

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"examprep/internal/modules/question/domain"
	questionout "examprep/internal/modules/question/port/out"
)

const maxDatasetBytes = 16 << 20

type HTTPRemote struct {
	url    string
	client *http.Client
}

func NewHTTPRemote(url string, client *http.Client) questionout.Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRemote{url: url, client: client}
}

func (r *HTTPRemote) Fetch(ctx context.Context) ([]domain.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build sync request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			// Best-effort body close.
			_ = cerr
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %d", resp.StatusCode)
	}
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read remote dataset: %w", err)
	}
	if len(payload) > maxDatasetBytes {
		return nil, fmt.Errorf("remote dataset exceeds %d bytes", maxDatasetBytes)
	}
	questions := []domain.Question{}
	if err := json.Unmarshal(payload, &questions); err != nil {
		return nil, fmt.Errorf("decode remote dataset: %w", err)
	}
	return questions, nil
}
