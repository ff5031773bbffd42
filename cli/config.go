package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/staticmcp"
	"gopkg.in/yaml.v3"
)

// loadConfig reads a YAML config from any afs supported location.
func loadConfig(ctx context.Context, location string) (*staticmcp.Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, url.Normalize(location, file.Scheme))
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", location, err)
	}
	ret := &staticmcp.Config{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", location, err)
	}
	return ret, nil
}

// Config builds the effective config: file values first, then flags, then
// positional arguments. Fixed mode takes SOURCE [PORT]; dynamic mode takes
// only [PORT].
func (o *Options) Config(ctx context.Context) (*staticmcp.Config, error) {
	ret := &staticmcp.Config{}
	if o.ConfigURL != "" {
		loaded, err := loadConfig(ctx, o.ConfigURL)
		if err != nil {
			return nil, err
		}
		ret = loaded
	}
	overlay(&ret.Mode, o.Mode)
	overlay(&ret.Transport, o.Transport)
	overlay(&ret.Address, o.Address)
	overlay(&ret.LogLevel, o.LogLevel)
	overlay(&ret.Name, o.Name)
	overlay(&ret.Version, o.Version)
	overlay(&ret.ProtocolVersion, o.ProtocolVersion)
	if o.FetchTimeoutSec != 0 {
		ret.FetchTimeoutSec = o.FetchTimeoutSec
	}
	args := o.Args.Values
	if ret.Mode != staticmcp.ModeDynamic && len(args) > 0 {
		ret.Source = args[0]
		args = args[1:]
	}
	switch len(args) {
	case 0:
	case 1:
		port, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", args[0], err)
		}
		ret.Port = port
	default:
		return nil, fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	return ret, nil
}

func overlay(target *string, value string) {
	if value != "" {
		*target = value
	}
}
