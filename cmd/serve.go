package cmd

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/callgrid/callgrid-mcp/internal/container"
	"github.com/callgrid/callgrid-mcp/internal/tools"
)

var serveVerbose bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve Callgrid tools over MCP stdio",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Verbose logging")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)
	if serveVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := container.New(cfg, log)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	log.WithField("tools", len(tools.Catalog())).Info("serving MCP over stdio")
	if err := server.ServeStdio(c.Server()); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
