// Package container wires the callgrid-mcp services using go.uber.org/dig.
package container

import (
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/callgrid/callgrid-mcp/internal/callgrid"
	"github.com/callgrid/callgrid-mcp/internal/config"
	"github.com/callgrid/callgrid-mcp/internal/tools"
)

const (
	serverName    = "callgrid-mcp"
	serverVersion = "0.1.0"
)

// Container holds the resolved service singletons. Callers use the typed
// getter methods; they never need to import dig directly.
type Container struct {
	client   *callgrid.Client
	registry *tools.Registry
	server   *server.MCPServer
}

func (c *Container) Client() *callgrid.Client  { return c.client }
func (c *Container) Registry() *tools.Registry { return c.registry }
func (c *Container) Server() *server.MCPServer { return c.server }

// New builds and wires all services from cfg. cfg must already be
// validated; NewClient still refuses empty credentials as a backstop.
func New(cfg *config.Config, log *logrus.Logger) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *logrus.Logger { return log }); err != nil {
		return nil, err
	}
	if err := d.Provide(newClient); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newServer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *callgrid.Client,
		registry *tools.Registry,
		srv *server.MCPServer,
	) {
		result = &Container{
			client:   client,
			registry: registry,
			server:   srv,
		}
	})
	return result, err
}

func newClient(cfg *config.Config, log *logrus.Logger) (*callgrid.Client, error) {
	opts := []callgrid.Option{callgrid.WithLogger(log)}
	if cfg.BaseURL != "" {
		opts = append(opts, callgrid.WithBaseURL(cfg.BaseURL))
	}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, callgrid.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		}))
	}
	return callgrid.NewClient(cfg.AccessKey, cfg.AccessSecret, opts...)
}

func newRegistry(client *callgrid.Client, log *logrus.Logger) *tools.Registry {
	return tools.NewRegistry(client, log)
}

func newServer(registry *tools.Registry) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion)
	registry.Register(s)
	return s
}
