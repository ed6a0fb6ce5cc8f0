package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/callgrid/callgrid-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the advertised tool catalog as JSON",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := json.MarshalIndent(tools.Catalog(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}
