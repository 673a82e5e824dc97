package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	vido "github.com/vidostudy/vido/pkg"
	"github.com/vidostudy/vido/pkg/study"
	"github.com/vidostudy/vido/pkg/utils"
)

// VidoMCPServer exposes the study store to local AI agents over stdio.
type VidoMCPServer struct {
	mcpServer *server.MCPServer
	store     *study.Store
	DbPath    string
}

// NewVidoMCPServer spins up an MCP server backed by the SQLite database at
// dbPath (per-OS default when empty). The schema is initialized or upgraded
// automatically and the default folders are seeded on first run.
func NewVidoMCPServer(dbPath string) (*VidoMCPServer, error) {
	resolvedPath, err := utils.ResolveAndEnsureDBPath(dbPath)
	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer(
		"Vido MCP Server",
		vido.Version,
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	store, err := study.Open(resolvedPath, true, "FULL")
	if err != nil {
		return nil, fmt.Errorf("failed to open study store at '%s': %w", resolvedPath, err)
	}

	if err := store.SeedDefaultFolders(context.Background()); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed default folders: %w", err)
	}

	return &VidoMCPServer{
		mcpServer: s,
		store:     store,
		DbPath:    resolvedPath,
	}, nil
}

// Start runs the stdio event loop. Make sure to register tools beforehand.
func (s *VidoMCPServer) Start() error {
	return server.ServeStdio(s.mcpServer)
}

// Store returns the underlying study store.
func (s *VidoMCPServer) Store() *study.Store {
	return s.store
}

// MCPRawServer exposes the raw mcp-go server (useful for additional configuration).
func (s *VidoMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}

// Close cleans up allocated resources.
func (s *VidoMCPServer) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
