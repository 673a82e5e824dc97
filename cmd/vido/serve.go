package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgmcp "github.com/vidostudy/vido/pkg/mcp"
)

// serveCmd starts the Vido MCP server as part of the main CLI.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Vido MCP server (stdio transport)",
	Long:  `Launches the MCP stdio server so that external AI agents can call Vido tools.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Starting Vido MCP Server…")

		mcpServer, err := pkgmcp.NewVidoMCPServer(dbPath)
		if err != nil {
			return fmt.Errorf("failed to create Vido MCP server: %w", err)
		}
		defer mcpServer.Close()

		fmt.Printf("Using database: %s\n", mcpServer.DbPath)

		// Register all available MCP tools
		pkgmcp.RegisterPingTool(mcpServer.MCPRawServer())
		// Folder tools
		pkgmcp.RegisterCreateFolderTool(mcpServer.MCPRawServer(), mcpServer.Store())
		pkgmcp.RegisterListFoldersTool(mcpServer.MCPRawServer(), mcpServer.Store())
		pkgmcp.RegisterDeleteFolderTool(mcpServer.MCPRawServer(), mcpServer.Store())
		// Video tools
		pkgmcp.RegisterSaveVideoTool(mcpServer.MCPRawServer(), mcpServer.Store())
		pkgmcp.RegisterListVideosTool(mcpServer.MCPRawServer(), mcpServer.Store())
		// Moment tools
		pkgmcp.RegisterAddMomentTool(mcpServer.MCPRawServer(), mcpServer.Store())
		pkgmcp.RegisterListMomentsTool(mcpServer.MCPRawServer(), mcpServer.Store())
		// Note tools
		pkgmcp.RegisterAddNoteTool(mcpServer.MCPRawServer(), mcpServer.Store())
		pkgmcp.RegisterListNotesTool(mcpServer.MCPRawServer(), mcpServer.Store())
		// Data tools
		pkgmcp.RegisterExportDataTool(mcpServer.MCPRawServer(), mcpServer.Store())

		fmt.Println("Vido MCP Server tools registered. Starting stdio listener…")
		if err := mcpServer.Start(); err != nil {
			return fmt.Errorf("Vido MCP server error: %w", err)
		}

		return nil
	},
}
