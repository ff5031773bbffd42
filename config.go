package staticmcp

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/viant/staticmcp/server"
)

const (
	// ModeFixed serves one content tree loaded at startup.
	ModeFixed = "fixed"
	// ModeDynamic serves any remote content tree named per request.
	ModeDynamic = "dynamic"

	TransportHTTP  = "http"
	TransportStdio = "stdio"

	DefaultAddress         = "0.0.0.0"
	DefaultPort            = 3000
	DefaultLogLevel        = "info"
	DefaultFetchTimeoutSec = 30
)

// Config defines bridge deployment settings.
type Config struct {
	Source          string       `yaml:"source" json:"source"`
	Mode            string       `yaml:"mode" json:"mode"`
	Transport       string       `yaml:"transport" json:"transport"`
	Address         string       `yaml:"address" json:"address"`
	Port            int          `yaml:"port" json:"port"`
	LogLevel        string       `yaml:"logLevel" json:"logLevel"`
	FetchTimeoutSec int          `yaml:"fetchTimeoutSec" json:"fetchTimeoutSec"`
	Name            string       `yaml:"name" json:"name"`
	Version         string       `yaml:"version" json:"version"`
	ProtocolVersion string       `yaml:"protocolVersion" json:"protocolVersion"`
	Cors            *server.Cors `yaml:"cors" json:"cors"`
}

// Init applies defaults to unset fields.
func (c *Config) Init() {
	if c.Mode == "" {
		c.Mode = ModeFixed
	}
	if c.Transport == "" {
		c.Transport = TransportHTTP
	}
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.FetchTimeoutSec == 0 {
		c.FetchTimeoutSec = DefaultFetchTimeoutSec
	}
}

// Validate checks config consistency.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeFixed:
		if c.Source == "" {
			return fmt.Errorf("source was empty: fixed mode requires a content tree path or URL")
		}
	case ModeDynamic:
		if c.Transport == TransportStdio {
			return fmt.Errorf("transport %v is not supported in %v mode", c.Transport, c.Mode)
		}
	default:
		return fmt.Errorf("unsupported mode: %v", c.Mode)
	}
	switch c.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("unsupported transport: %v", c.Transport)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %v", c.Port)
	}
	if c.FetchTimeoutSec < 0 {
		return fmt.Errorf("invalid fetch timeout: %v", c.FetchTimeoutSec)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// FetchTimeout returns the remote document fetch timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}
