package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/protocol"
)

func (s *Server) handleListCommands(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmds := s.catalog.All()
	if cat, _ := request.GetArguments()["category"].(string); cat != "" {
		if !catalog.Category(cat).Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category %q (want get, set or action)", cat)), nil
		}
		cmds = s.catalog.ByCategory(catalog.Category(cat))
	}

	infos := make([]CommandInfo, 0, len(cmds))
	for _, cmd := range cmds {
		infos = append(infos, CommandToInfo(cmd))
	}

	out := ListCommandsOutput{Commands: infos, Count: len(infos)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleDescribeCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, errResult := s.lookupCommand(request)
	if errResult != nil {
		return errResult, nil
	}

	out := DescribeCommandOutput{
		Command: CommandToInfo(cmd),
		Schema:  cmd.Schema(),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListTokens(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := ListTokensOutput{
		Tokens:      catalog.Tokens(),
		SweepTokens: catalog.SweepTokens(),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// handleValidateParameters reports invalid values as a normal result; only
// malformed tool input is a tool error.
func (s *Server) handleValidateParameters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, errResult := s.lookupCommand(request)
	if errResult != nil {
		return errResult, nil
	}
	values, err := paramsArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := ValidateOutput{Command: cmd.Key, Valid: true}
	if err := s.checkValues(cmd, values); err != nil {
		out.Valid = false
		out.Message = err.Error()
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			out.Param = verr.Param
			out.Reason = verr.Reason
			out.Limit = verr.Limit
		}
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleBuildRequest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, errResult := s.lookupCommand(request)
	if errResult != nil {
		return errResult, nil
	}
	address, err := requiredString(request, "address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	values, err := paramsArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.checkValues(cmd, values); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := BuildRequestOutput{
		Command: cmd.Key,
		URL:     protocol.Encode(protocol.BaseURL(address), cmd, values),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleDecodeResponse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token, err := requiredString(request, "command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, ok := request.GetArguments()["raw"].(string)
	if !ok {
		return mcp.NewToolResultError(`required parameter "raw" is missing`), nil
	}

	if cmd, err := s.catalog.Lookup(token); err == nil {
		token = cmd.Token
	}

	out := ResponseToOutput("", protocol.Decode(token, raw))
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleProbeCamera(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := requiredString(request, "address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.controller.Probe(ctx, address)
	if err != nil {
		if errors.Is(err, device.ErrNotCamera) && resp != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s does not look like a camera; it replied: %q", address, resp.Raw)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("probe failed: %s", err)), nil
	}

	return mcp.NewToolResultText(formatJSON(ResponseToOutput(address, *resp))), nil
}

func (s *Server) handleExecuteCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := requiredString(request, "address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cmd, errResult := s.lookupCommand(request)
	if errResult != nil {
		return errResult, nil
	}
	values, err := paramsArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.checkValues(cmd, values); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.controller.Execute(ctx, address, cmd, values)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to execute %s: %s", cmd.Key, err)), nil
	}

	return mcp.NewToolResultText(formatJSON(ResponseToOutput(address, *resp))), nil
}

func (s *Server) handleSweepCamera(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := requiredString(request, "address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	onlyOK, _ := request.GetArguments()["only_ok"].(bool)

	results, err := s.controller.Sweep(ctx, address, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sweep failed: %s", err)), nil
	}

	out := SweepOutput{Address: address, Total: len(results), Results: []SweepResponse{}}
	for _, r := range results {
		ok := r.Response.Outcome == protocol.OutcomeOK
		if ok {
			out.OK++
		}
		if onlyOK && !ok {
			continue
		}
		out.Results = append(out.Results, SweepResponse{
			ResponseOutput: ResponseToOutput("", r.Response),
			Error:          r.Error,
			DurationMS:     r.Duration.Milliseconds(),
		})
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// lookupCommand resolves the "command" argument against the catalog.
func (s *Server) lookupCommand(request mcp.CallToolRequest) (catalog.Command, *mcp.CallToolResult) {
	key, err := requiredString(request, "command")
	if err != nil {
		return catalog.Command{}, mcp.NewToolResultError(err.Error())
	}
	cmd, err := s.catalog.Lookup(key)
	if err != nil {
		return catalog.Command{}, mcp.NewToolResultError(fmt.Sprintf("%s; use list_commands to see available keys", err))
	}
	return cmd, nil
}

// checkValues runs the shape check then the catalog rules.
func (s *Server) checkValues(cmd catalog.Command, values catalog.Values) error {
	if err := s.validator.ValidateParams(cmd, values); err != nil {
		return err
	}
	return catalog.Validate(cmd, values)
}

func paramsArg(request mcp.CallToolRequest) (catalog.Values, error) {
	v, ok := request.GetArguments()["params"]
	if !ok || v == nil {
		return catalog.Values{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(`parameter "params" must be an object`)
	}
	return catalog.Values(m), nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
