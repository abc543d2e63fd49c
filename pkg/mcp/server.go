package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/device/schema"
)

// Server exposes the camera command catalog and controller as MCP tools.
type Server struct {
	mcpServer  *server.MCPServer
	controller device.Controller
	catalog    *catalog.Catalog
	validator  *schema.Validator
}

// NewServer creates a new MCP server for camera control
func NewServer(controller device.Controller, cat *catalog.Catalog, validator *schema.Validator) *Server {
	s := &Server{
		controller: controller,
		catalog:    cat,
		validator:  validator,
	}

	s.mcpServer = server.NewMCPServer(
		"kodakam",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
