package types

import (
	"encoding/json"
	"time"

	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/format"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// --- Request DTOs ---

// DecodeRequest is the request body for POST /decode
type DecodeRequest struct {
	Command string `json:"command" binding:"required"`
	Raw     string `json:"raw"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Param   string   `json:"param,omitempty"`  // failing parameter, for validation errors
	Reason  string   `json:"reason,omitempty"` // required, not a number, below minimum, above maximum
	Limit   *float64 `json:"limit,omitempty"`  // violated bound
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	Commands    int       `json:"commands"`
	SweepTokens int       `json:"sweep_tokens"`
	Timestamp   time.Time `json:"timestamp"`
}

// CommandInfo describes one catalog command
type CommandInfo struct {
	Key         string                  `json:"key"`
	Token       string                  `json:"token"`
	Description string                  `json:"description"`
	Category    catalog.Category        `json:"category"`
	Parameters  []catalog.ParameterInfo `json:"parameters"`
}

// NewCommandInfo converts a catalog command to its wire form.
func NewCommandInfo(cmd catalog.Command) CommandInfo {
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

// ListCommandsResponse is returned from GET /commands
type ListCommandsResponse struct {
	Commands []CommandInfo `json:"commands"`
	Count    int           `json:"count"`
}

// CommandResponse is returned from GET /commands/:key
type CommandResponse struct {
	Command CommandInfo     `json:"command"`
	Schema  json.RawMessage `json:"schema"`
}

// ListTokensResponse is returned from GET /tokens
type ListTokensResponse struct {
	Tokens      []catalog.Token `json:"tokens"`
	SweepTokens []string        `json:"sweep_tokens"`
	Count       int             `json:"count"`
}

// ValidateResponse is returned from POST /commands/:key/validate
type ValidateResponse struct {
	Command string `json:"command"`
	Valid   bool   `json:"valid"`
}

// EncodeResponse is returned from POST /commands/:key/encode
type EncodeResponse struct {
	Command string `json:"command"`
	URL     string `json:"url"`
}

// ResponseView is a decoded camera reply with its rendered form
type ResponseView struct {
	Command    string                        `json:"command"`
	Outcome    protocol.Outcome              `json:"outcome" swaggertype:"string" enums:"ok,failed,empty,unparseable"`
	Fields     []protocol.Field              `json:"fields,omitempty"`
	Composites map[string]protocol.Composite `json:"composites,omitempty"`
	Lines      []format.Line                 `json:"lines,omitempty"`
	Summary    string                        `json:"summary"`
	Raw        string                        `json:"raw"`
}

// NewResponseView renders a decoded response.
func NewResponseView(r protocol.Response) ResponseView {
	v := ResponseView{
		Command: r.Command,
		Outcome: r.Outcome,
		Fields:  r.Fields,
		Summary: format.Summary(r),
		Raw:     r.Raw,
	}
	if r.Outcome == protocol.OutcomeOK {
		v.Lines = format.Lines(r)
		if c := r.Composites(); len(c) > 0 {
			v.Composites = c
		}
	}
	return v
}

// CameraResponse is returned from GET /cameras/:address and
// POST /cameras/:address/commands/:key
type CameraResponse struct {
	Address   string       `json:"address"`
	Response  ResponseView `json:"response"`
	Timestamp time.Time    `json:"timestamp"`
}

// SweepResultView is one command of a sweep
type SweepResultView struct {
	Command    string       `json:"command"`
	Response   ResponseView `json:"response"`
	Error      string       `json:"error,omitempty"`
	DurationMS int64        `json:"duration_ms"`
}

// SweepResponse is returned from POST /cameras/:address/sweep
type SweepResponse struct {
	Address    string            `json:"address"`
	Results    []SweepResultView `json:"results"`
	Count      int               `json:"count"`
	OK         int               `json:"ok"`
	DurationMS int64             `json:"duration_ms"`
}
