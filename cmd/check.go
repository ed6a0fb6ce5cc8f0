package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/callgrid/callgrid-mcp/internal/callgrid"
	"github.com/callgrid/callgrid-mcp/internal/container"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify Callgrid credentials with a single API call",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := container.New(cfg, newLogger(cfg))
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	to := time.Now().UTC()
	from := to.Add(-24 * time.Hour)
	_, err = c.Client().ListCalls(ctx, callgrid.ListCallsQuery{
		FromDateTime: from.Format(time.RFC3339),
		ToDateTime:   to.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}

	fmt.Println("✓ Callgrid credentials OK")
	return nil
}
