package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/linkvault"
)

// DefaultReaderURL is the remote reader service that renders a page as
// text. The percent-encoded target URL is appended to it.
const DefaultReaderURL = "https://r.jina.ai/"

// Ensure ReaderService implements linkvault.PageReader at compile time.
var _ linkvault.PageReader = (*ReaderService)(nil)

// ReaderService reads pages through a remote reader. The service response
// already carries a "Title:" line followed by markdown content.
type ReaderService struct {
	client      *http.Client
	baseURL     string
	maxBodySize int64
}

// NewReaderService creates a ReaderService for the reader at baseURL.
// An empty baseURL selects DefaultReaderURL.
func NewReaderService(baseURL string, opts ...Option) *ReaderService {
	if baseURL == "" {
		baseURL = DefaultReaderURL
	}
	o := buildOptions(opts)
	return &ReaderService{
		client:      o.client,
		baseURL:     baseURL,
		maxBodySize: o.maxBodySize,
	}
}

// ReadPage asks the reader service for the text of target.
func (s *ReaderService) ReadPage(ctx context.Context, target string) (*linkvault.Page, error) {
	if err := linkvault.ValidateURL(target); err != nil {
		return nil, err
	}

	body, err := get(ctx, s.client, s.baseURL+EncodeURIComponent(target), "text/plain", s.maxBodySize)
	if err != nil {
		return nil, err
	}

	return &linkvault.Page{
		URL:     target,
		Content: body,
	}, nil
}

// uriUnreserved restores the marks encodeURIComponent leaves unescaped and
// QueryEscape does not.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s so it can be used as a single path
// segment, leaving A-Z a-z 0-9 - _ . ! ~ * ' ( ) as they are. Spaces become
// %20 rather than '+'.
func EncodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}
