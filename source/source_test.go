package source

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

var quiet = WithLogger(log.New(io.Discard))

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	baseDir := t.TempDir()
	for name, content := range files {
		location := filepath.Join(baseDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(location, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return baseDir
}

func TestNew(t *testing.T) {
	testCases := []struct {
		location string
		remote   bool
	}{
		{location: "http://localhost:8080/mcp", remote: true},
		{location: "https://staticmcp.com/mcp/", remote: true},
		{location: "./data", remote: false},
		{location: "/var/lib/mcp", remote: false},
		{location: "httpdocs", remote: false},
	}
	for _, testCase := range testCases {
		actual := New(testCase.location, quiet)
		_, isRemote := actual.(*Remote)
		assert.Equal(t, testCase.remote, isRemote, testCase.location)
		assert.Equal(t, testCase.remote, IsRemote(testCase.location), testCase.location)
	}
}

func TestLocal_LoadJSON(t *testing.T) {
	baseDir := writeTree(t, map[string]string{
		"resources/readme.json": `{"text":"hello","n":3}`,
		"broken.json":           `{"text":`,
	})
	ctx := context.Background()
	src := NewLocal(baseDir, quiet)

	document, err := src.LoadJSON(ctx, "resources/readme.json")
	if assert.Nil(t, err) {
		object := document.(map[string]any)
		assert.Equal(t, "hello", object["text"])
		assert.Equal(t, json.Number("3"), object["n"])
	}

	_, err = src.LoadJSON(ctx, "missing.json")
	assert.True(t, errors.Is(err, ErrIO))
	assert.False(t, errors.Is(err, ErrParse))

	_, err = src.LoadJSON(ctx, "broken.json")
	assert.True(t, errors.Is(err, ErrParse))
	var loadErr *Error
	if assert.True(t, errors.As(err, &loadErr)) {
		assert.True(t, strings.HasSuffix(loadErr.Location, "broken.json"))
	}
}

func TestLocal_LoadManifest(t *testing.T) {
	ctx := context.Background()
	baseDir := writeTree(t, map[string]string{
		"mcp.json": `{"serverInfo":{"name":"docs","version":"1.2.3"},"capabilities":{"tools":[{"name":"search"}]}}`,
	})
	actual, err := NewLocal(baseDir, quiet).LoadManifest(ctx)
	if assert.Nil(t, err) {
		assert.Equal(t, "docs", actual.Name())
		assert.Equal(t, "1.2.3", actual.Version())
		assert.Equal(t, 1, len(actual.Tools()))
	}

	_, err = NewLocal(writeTree(t, map[string]string{"mcp.json": `[]`}), quiet).LoadManifest(ctx)
	assert.True(t, errors.Is(err, ErrSchema))

	_, err = NewLocal(t.TempDir(), quiet).LoadManifest(ctx)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestRemote_LoadJSON(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/mcp/mcp.json":
			_, _ = w.Write([]byte(`{"serverInfo":{"name":"remote","version":"9.9.9"}}`))
		case "/mcp/resources/a.json":
			_, _ = w.Write([]byte(`{"contents":[]}`))
		case "/mcp/bad.json":
			_, _ = w.Write([]byte(`<html>`))
		case "/mcp/teapot.json":
			w.WriteHeader(499)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()
	ctx := context.Background()
	src := NewRemote(server.URL+"/mcp//", quiet)
	assert.Equal(t, server.URL+"/mcp", src.BaseURL())

	document, err := src.LoadJSON(ctx, "resources/a.json")
	if assert.Nil(t, err) {
		assert.Equal(t, map[string]any{"contents": []any{}}, document)
	}

	_, err = src.LoadJSON(ctx, "missing.json")
	assert.True(t, errors.Is(err, ErrIO))
	assert.Contains(t, err.Error(), "HTTP 404 Not Found: Not Found")

	_, err = src.LoadJSON(ctx, "teapot.json")
	assert.True(t, errors.Is(err, ErrIO))
	assert.Contains(t, err.Error(), "499")
	assert.Contains(t, err.Error(), "Unknown")

	_, err = src.LoadJSON(ctx, "bad.json")
	assert.True(t, errors.Is(err, ErrParse))

	actual, err := src.LoadManifest(ctx)
	if assert.Nil(t, err) {
		assert.Equal(t, "remote", actual.Name())
	}
	assert.Contains(t, paths, "/mcp/mcp.json")
}

func TestRemote_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()
	_, err := NewRemote(baseURL, quiet).LoadJSON(context.Background(), "mcp.json")
	assert.True(t, errors.Is(err, ErrIO))
}

func TestLocation(t *testing.T) {
	baseDir := t.TempDir()
	local := NewLocal(baseDir+"/", quiet)
	assert.Equal(t, "file://"+filepath.ToSlash(baseDir), local.BaseURL())
	assert.Equal(t, local.BaseURL(), Location(local))
	assert.Equal(t, "https://staticmcp.com/mcp", Location(New("https://staticmcp.com/mcp//", quiet)))
	assert.Equal(t, "", Location(&struct{ Source }{}))
}
