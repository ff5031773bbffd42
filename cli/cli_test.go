package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/viant/staticmcp"
	"github.com/viant/staticmcp/server"
)

func TestOptions_Config(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	yamlConfig := "source: /srv/mcp\nport: 4100\nlogLevel: debug\ncors:\n  allowOrigins: [\"http://app.local\"]\n"
	if err := os.WriteFile(configFile, []byte(yamlConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		description string
		args        []string
		expect      *staticmcp.Config
		expectError bool
	}{
		{
			description: "source only",
			args:        []string{"./my-static-mcp"},
			expect:      &staticmcp.Config{Source: "./my-static-mcp"},
		},
		{
			description: "source and port",
			args:        []string{"https://staticmcp.com/mcp", "3001"},
			expect:      &staticmcp.Config{Source: "https://staticmcp.com/mcp", Port: 3001},
		},
		{
			description: "dynamic port",
			args:        []string{"-m", "dynamic", "8080"},
			expect:      &staticmcp.Config{Mode: staticmcp.ModeDynamic, Port: 8080},
		},
		{
			description: "stdio with flags",
			args:        []string{"-t", "stdio", "-l", "warn", "--name", "docs", "./data"},
			expect:      &staticmcp.Config{Source: "./data", Transport: staticmcp.TransportStdio, LogLevel: "warn", Name: "docs"},
		},
		{
			description: "config file with flag override",
			args:        []string{"-c", configFile, "-l", "error"},
			expect: &staticmcp.Config{
				Source:   "/srv/mcp",
				Port:     4100,
				LogLevel: "error",
				Cors:     &server.Cors{},
			},
		},
		{
			description: "invalid port",
			args:        []string{"./data", "http"},
			expectError: true,
		},
		{
			description: "extra arguments",
			args:        []string{"./data", "3000", "more"},
			expectError: true,
		},
	}
	for _, testCase := range testCases {
		options := &Options{}
		_, err := flags.ParseArgs(options, testCase.args)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual, err := options.Config(context.Background())
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.expect.Cors != nil {
			assert.NotNil(t, actual.Cors, testCase.description)
			assert.EqualValues(t, []string{"http://app.local"}, actual.Cors.AllowOrigins, testCase.description)
			actual.Cors = nil
			testCase.expect.Cors = nil
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestOptions_MissingConfig(t *testing.T) {
	options := &Options{ConfigURL: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := options.Config(context.Background())
	assert.NotNil(t, err)
}

func TestNewLogger(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger, err := NewLogger(buffer, "warn")
	if !assert.Nil(t, err) {
		return
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	assert.NotContains(t, buffer.String(), "hidden")
	assert.Contains(t, buffer.String(), "shown")
	assert.Contains(t, buffer.String(), "staticmcp")

	_, err = NewLogger(buffer, "loud")
	assert.NotNil(t, err)
}

func TestRun_FixedFailure(t *testing.T) {
	err := Run([]string{"-l", "error", t.TempDir()})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Troubleshooting")
}
