// Package cmd implements the callgrid-mcp CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/callgrid/callgrid-mcp/internal/config"
)

const version = "0.1.0"

var cfgPath string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "callgrid-mcp",
	Short: "MCP server for the Callgrid call-intelligence API",
	Long: "callgrid-mcp exposes Callgrid call listing, transcript retrieval, and\n" +
		"extensive call details as MCP tools over stdio.",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default "+config.ConfigPath()+")")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig loads the config file and overlays credential env vars.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// newLogger builds the process logger. Output goes to stderr: stdout is the
// MCP transport and must stay clean.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
