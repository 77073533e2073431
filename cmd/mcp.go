package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xmazu/envzilla/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio) for AI/IDE integration",
	Long:  `Run the Model Context Protocol server on stdio. Exposes env_status (which template variables are missing or empty in each .env file) and template_variables (keys, defaults and prompt metadata of the template). Read-only: never writes files and never returns values of .env files.`,
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	logger.Info().Msg("mcp server starting on stdio")
	return mcpserver.Run(cmd.Context(), rootCmd.Version, logger)
}
