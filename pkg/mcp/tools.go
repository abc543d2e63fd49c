package mcp

import "github.com/mark3labs/mcp-go/mcp"

const addressDescription = "Camera host or host:port on the local network (e.g. 192.168.1.50)"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Catalog (offline)
	s.mcpServer.AddTool(
		mcp.NewTool("list_commands",
			mcp.WithDescription("List the camera command catalog with parameter schemas"),
			mcp.WithString("category",
				mcp.Description("Only return commands in this category"),
				mcp.Enum("get", "set", "action"),
			),
		),
		s.handleListCommands,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("describe_command",
			mcp.WithDescription("Describe one command: wire token, parameters and JSON Schema"),
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command key (e.g. set_night_vision)"),
			),
		),
		s.handleDescribeCommand,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_tokens",
			mcp.WithDescription("List the symbolic wire-token table and the get_ tokens a sweep polls"),
		),
		s.handleListTokens,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("validate_parameters",
			mcp.WithDescription("Check parameter values against a command's schema without contacting a camera"),
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command key"),
			),
			mcp.WithObject("params",
				mcp.Description("Parameter values keyed by name (e.g. {\"value\": 50})"),
			),
		),
		s.handleValidateParameters,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("build_request",
			mcp.WithDescription("Validate parameters and return the camera URL that would be requested"),
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command key"),
			),
			mcp.WithString("address",
				mcp.Required(),
				mcp.Description(addressDescription),
			),
			mcp.WithObject("params",
				mcp.Description("Parameter values keyed by name"),
			),
		),
		s.handleBuildRequest,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("decode_response",
			mcp.WithDescription("Decode a raw camera reply for a command and render it human-readable"),
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command key or raw wire token the reply answers"),
			),
			mcp.WithString("raw",
				mcp.Required(),
				mcp.Description("Raw reply body, e.g. \"get_caminfo: fw=2.1.0&md=1:0:3:0\""),
			),
		),
		s.handleDecodeResponse,
	)

	// Live cameras
	s.mcpServer.AddTool(
		mcp.NewTool("probe_camera",
			mcp.WithDescription("Check that an address answers like a camera and return its get_caminfo fields"),
			mcp.WithString("address",
				mcp.Required(),
				mcp.Description(addressDescription),
			),
		),
		s.handleProbeCamera,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("execute_command",
			mcp.WithDescription("Send a catalog command to a camera. Parameters are validated first; a -1 reply means the camera rejected or does not support the command."),
			mcp.WithString("address",
				mcp.Required(),
				mcp.Description(addressDescription),
			),
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command key"),
			),
			mcp.WithObject("params",
				mcp.Description("Parameter values keyed by name"),
			),
		),
		s.handleExecuteCommand,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("sweep_camera",
			mcp.WithDescription("Query every known get_ token on a camera concurrently and report all results"),
			mcp.WithString("address",
				mcp.Required(),
				mcp.Description(addressDescription),
			),
			mcp.WithBoolean("only_ok",
				mcp.Description("Omit commands that failed, were empty or unparseable (default false)"),
			),
		),
		s.handleSweepCamera,
	)
}
