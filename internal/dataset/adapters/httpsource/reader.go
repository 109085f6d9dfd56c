package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
	"github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/ports"
)

// Reader fetches the source document from an HTTP endpoint, once.
type Reader struct {
	url    string
	client *http.Client
}

func NewReader(url string, client *http.Client) *Reader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Reader{url: url, client: client}
}

var _ ports.DatasetReaderPort = (*Reader)(nil)

func (r *Reader) ReadDocument(ctx context.Context) (*domain.SourceDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", domain.ErrSourceUnavailable, r.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s from %s", domain.ErrBadStatus, resp.Status, r.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSourceUnavailable, err)
	}

	var doc domain.SourceDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse response from %s: %v", domain.ErrMalformedDocument, r.url, err)
	}
	return &doc, nil
}
