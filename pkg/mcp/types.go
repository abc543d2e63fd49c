package mcp

import (
	"encoding/json"

	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/format"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// --- Catalog Tools ---

// CommandInfo describes a catalog command in tool outputs
type CommandInfo struct {
	Key         string                  `json:"key" jsonschema:"description=Lookup key"`
	Token       string                  `json:"token" jsonschema:"description=Wire token sent as req=<token>"`
	Description string                  `json:"description" jsonschema:"description=What the command does"`
	Category    catalog.Category        `json:"category" jsonschema:"description=get, set or action"`
	Parameters  []catalog.ParameterInfo `json:"parameters" jsonschema:"description=Parameters in URL order"`
}

// ListCommandsOutput is the output for the list_commands tool
type ListCommandsOutput struct {
	Commands []CommandInfo `json:"commands"`
	Count    int           `json:"count"`
}

// DescribeCommandOutput is the output for the describe_command tool
type DescribeCommandOutput struct {
	Command CommandInfo     `json:"command"`
	Schema  json.RawMessage `json:"schema" jsonschema:"description=JSON Schema of the parameter object"`
}

// ListTokensOutput is the output for the list_tokens tool
type ListTokensOutput struct {
	Tokens      []catalog.Token `json:"tokens"`
	SweepTokens []string        `json:"sweep_tokens"`
}

// ValidateOutput is the output for the validate_parameters tool
type ValidateOutput struct {
	Command string   `json:"command"`
	Valid   bool     `json:"valid"`
	Param   string   `json:"param,omitempty" jsonschema:"description=First failing parameter"`
	Reason  string   `json:"reason,omitempty" jsonschema:"description=required, not a number, below minimum or above maximum"`
	Limit   *float64 `json:"limit,omitempty" jsonschema:"description=Violated bound"`
	Message string   `json:"message,omitempty"`
}

// BuildRequestOutput is the output for the build_request tool
type BuildRequestOutput struct {
	Command string `json:"command"`
	URL     string `json:"url"`
}

// --- Camera Tools ---

// ResponseOutput is a decoded camera reply with its rendering
type ResponseOutput struct {
	Address    string                        `json:"address,omitempty"`
	Command    string                        `json:"command"`
	Outcome    protocol.Outcome              `json:"outcome" jsonschema:"description=ok, failed, empty or unparseable"`
	Summary    string                        `json:"summary"`
	Lines      []format.Line                 `json:"lines,omitempty"`
	Composites map[string]protocol.Composite `json:"composites,omitempty"`
	Raw        string                        `json:"raw"`
}

// SweepOutput is the output for the sweep_camera tool
type SweepOutput struct {
	Address string          `json:"address"`
	Total   int             `json:"total"`
	OK      int             `json:"ok"`
	Results []SweepResponse `json:"results"`
}

// SweepResponse is one command of a sweep
type SweepResponse struct {
	ResponseOutput
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// --- Helper conversions ---

// CommandToInfo converts a catalog command for tool output
func CommandToInfo(cmd catalog.Command) CommandInfo {
	params := make([]catalog.ParameterInfo, 0, len(cmd.Parameters))
	for _, p := range cmd.Parameters {
		params = append(params, catalog.Describe(p))
	}
	return CommandInfo{
		Key:         cmd.Key,
		Token:       cmd.Token,
		Description: cmd.Description,
		Category:    cmd.Category,
		Parameters:  params,
	}
}

// ResponseToOutput renders a decoded response for tool output
func ResponseToOutput(address string, r protocol.Response) ResponseOutput {
	out := ResponseOutput{
		Address: address,
		Command: r.Command,
		Outcome: r.Outcome,
		Summary: format.Summary(r),
		Raw:     r.Raw,
	}
	if r.Outcome == protocol.OutcomeOK {
		out.Lines = format.Lines(r)
		if c := r.Composites(); len(c) > 0 {
			out.Composites = c
		}
	}
	return out
}
