package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/viant/staticmcp/internal/conv"
	"github.com/viant/staticmcp/manifest"
)

// Remote fetches documents from an HTTP base URL.
type Remote struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// BaseURL returns the base URL without trailing slashes.
func (r *Remote) BaseURL() string {
	return r.baseURL
}

// LoadJSON fetches and parses the document at relativePath. Any non-2xx
// status is an ErrIO failure naming the status code and reason.
func (r *Remote) LoadJSON(ctx context.Context, relativePath string) (any, error) {
	location := r.baseURL + "/" + relativePath
	r.logger.Debug("fetching", "url", location)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, newError(ErrIO, location, err)
	}
	response, err := r.client.Do(request)
	if err != nil {
		return nil, newError(ErrIO, location, err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, newError(ErrIO, location, statusError(response))
	}
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, newError(ErrIO, location, err)
	}
	document, err := conv.Decode(data)
	if err != nil {
		return nil, newError(ErrParse, location, err)
	}
	return document, nil
}

// LoadManifest loads the root manifest document.
func (r *Remote) LoadManifest(ctx context.Context) (*manifest.Manifest, error) {
	return loadManifest(ctx, r)
}

func statusError(response *http.Response) error {
	reason := http.StatusText(response.StatusCode)
	if reason == "" {
		reason = "Unknown"
	}
	status := response.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", response.StatusCode, reason)
	}
	return fmt.Errorf("HTTP %v: %v", status, reason)
}

// NewRemote creates a source for baseURL; trailing slashes are dropped.
func NewRemote(baseURL string, options ...Option) *Remote {
	cfg := newConfig(options)
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  cfg.client,
		logger:  cfg.logger.With("source", "remote"),
	}
}
