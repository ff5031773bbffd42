package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/viant/jsonrpc"
	"github.com/viant/staticmcp/manifest"
	"github.com/viant/staticmcp/source"
)

type stubSource struct {
	err error
}

func (s *stubSource) LoadJSON(context.Context, string) (any, error) {
	return map[string]any{}, s.err
}

func (s *stubSource) LoadManifest(context.Context) (*manifest.Manifest, error) {
	return &manifest.Manifest{}, s.err
}

type stubHandler struct {
	fail bool
}

func (h *stubHandler) Serve(_ context.Context, _ *jsonrpc.Request, response *jsonrpc.Response) {
	if h.fail {
		response.Error = &jsonrpc.Error{Code: -32603, Message: "boom"}
	}
}

func (h *stubHandler) OnNotification(context.Context, *jsonrpc.Notification) {}

func TestMetrics_ObserveRequest(t *testing.T) {
	aMetrics := New()
	aMetrics.ObserveRequest("tools/call", &jsonrpc.Response{})
	aMetrics.ObserveRequest("tools/call", &jsonrpc.Response{})
	aMetrics.ObserveRequest("resources/read", &jsonrpc.Response{Error: &jsonrpc.Error{Code: -32603}})
	aMetrics.ObserveRequest("made/up", &jsonrpc.Response{})

	assert.Equal(t, 2.0, testutil.ToFloat64(aMetrics.requests.WithLabelValues("tools/call", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.requests.WithLabelValues("resources/read", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.requests.WithLabelValues("other", "ok")))
}

func TestMetrics_Wrap(t *testing.T) {
	aMetrics := New()
	ctx := context.Background()
	aMetrics.Wrap(&stubHandler{}).Serve(ctx, &jsonrpc.Request{Method: "initialize"}, &jsonrpc.Response{})
	aMetrics.Wrap(&stubHandler{fail: true}).Serve(ctx, &jsonrpc.Request{Method: "tools/list"}, &jsonrpc.Response{})
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.requests.WithLabelValues("initialize", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(aMetrics.requests.WithLabelValues("tools/list", "error")))
}

func TestMetrics_Source(t *testing.T) {
	aMetrics := New()
	ctx := context.Background()
	ok := aMetrics.Source("local", &stubSource{})
	_, err := ok.LoadJSON(ctx, "a.json")
	assert.Nil(t, err)
	_, err = ok.LoadManifest(ctx)
	assert.Nil(t, err)

	failing := aMetrics.Source("remote", &stubSource{err: &source.Error{Kind: source.ErrIO, Err: errors.New("down")}})
	_, err = failing.LoadJSON(ctx, "a.json")
	assert.True(t, errors.Is(err, source.ErrIO))

	assert.Equal(t, 2, testutil.CollectAndCount(aMetrics.loads))

	recorder := httptest.NewRecorder()
	aMetrics.HTTPHandler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(recorder.Body)
	assert.Contains(t, string(body), `staticmcp_document_load_seconds_count{outcome="ok",source="local"} 2`)
	assert.Contains(t, string(body), `staticmcp_document_load_seconds_count{outcome="io",source="remote"} 1`)
}
