package staticmcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/staticmcp/bridge"
	"github.com/viant/staticmcp/internal/metrics"
	"github.com/viant/staticmcp/server"
	"github.com/viant/staticmcp/source"
)

// Service runs one bridge deployment as configured.
type Service struct {
	config  *Config
	logger  *log.Logger
	metrics *metrics.Metrics
	fixed   *server.Fixed
	dynamic *server.Dynamic
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Handler returns the HTTP handler of the configured deployment.
func (s *Service) Handler() http.Handler {
	if s.dynamic != nil {
		return s.dynamic.Handler()
	}
	return s.fixed.Handler()
}

// ListenAndServe serves until ctx is done or the transport fails.
func (s *Service) ListenAndServe(ctx context.Context) error {
	if s.config.Transport == TransportStdio {
		s.logger.Info("serving over stdio", "source", s.config.Source)
		return s.fixed.Stdio(ctx).ListenAndServe()
	}
	httpServer := &http.Server{Addr: s.config.Addr(), Handler: s.Handler()}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = httpServer.Shutdown(context.Background())
		case <-done:
		}
	}()
	s.logger.Info("server ready", "mode", s.config.Mode, "address", httpServer.Addr, "source", s.config.Source)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Service) bridgeOptions() []bridge.Option {
	ret := []bridge.Option{bridge.WithLogger(s.logger.With("component", "bridge"))}
	if s.config.Name != "" || s.config.Version != "" {
		info := schema.Implementation{Name: bridge.DefaultName, Version: bridge.DefaultVersion}
		if s.config.Name != "" {
			info.Name = s.config.Name
		}
		if s.config.Version != "" {
			info.Version = s.config.Version
		}
		ret = append(ret, bridge.WithImplementation(info))
	}
	if s.config.ProtocolVersion != "" {
		ret = append(ret, bridge.WithProtocolVersion(s.config.ProtocolVersion))
	}
	return ret
}

func (s *Service) sourceOptions() []source.Option {
	return []source.Option{
		source.WithLogger(s.logger.With("component", "source")),
		source.WithHTTPClient(&http.Client{Timeout: s.config.FetchTimeout()}),
	}
}

// New creates a service. In fixed mode the content tree manifest is loaded
// eagerly and its failure is returned.
func New(ctx context.Context, config *Config, logger *log.Logger) (*Service, error) {
	if config == nil {
		return nil, fmt.Errorf("config was nil")
	}
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	ret := &Service{config: config, logger: logger, metrics: metrics.New()}
	bridgeOptions := ret.bridgeOptions()
	sourceOptions := ret.sourceOptions()
	serverOptions := []server.Option{
		server.WithLogger(logger.With("component", "server")),
		server.WithMetrics(ret.metrics),
	}
	if config.Cors != nil {
		serverOptions = append(serverOptions, server.WithCORS(config.Cors))
	}
	if config.Mode == ModeDynamic {
		serverOptions = append(serverOptions,
			server.WithBridgeOptions(bridgeOptions...),
			server.WithSourceOptions(sourceOptions...))
		ret.dynamic = server.NewDynamic(serverOptions...)
		return ret, nil
	}
	kind := "local"
	if source.IsRemote(config.Source) {
		kind = "remote"
	}
	location := source.New(config.Source, sourceOptions...)
	logger.Info("opening content tree", "kind", kind, "location", source.Location(location))
	src := ret.metrics.Source(kind, location)
	b, err := bridge.Open(ctx, src, bridgeOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bridge for %v: %w", config.Source, err)
	}
	ret.fixed = server.NewFixed(b, serverOptions...)
	return ret, nil
}
