package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/urmzd/kodakam/pkg/api/types"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/device/schema"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// fakeController answers from canned replies keyed by wire token.
type fakeController struct {
	replies  map[string]string
	err      error
	executed []catalog.Values
}

func (f *fakeController) reply(token string) (*protocol.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	raw, ok := f.replies[token]
	if !ok {
		raw = token + ": -1"
	}
	resp := protocol.Decode(token, raw)
	return &resp, nil
}

func (f *fakeController) BaseURL(address string) (string, error) {
	if address == "" || strings.ContainsAny(address, "/@ ") {
		return "", fmt.Errorf("%w: %q", device.ErrInvalidAddress, address)
	}
	return protocol.BaseURL(address), nil
}

func (f *fakeController) Execute(_ context.Context, _ string, cmd catalog.Command, values catalog.Values) (*protocol.Response, error) {
	f.executed = append(f.executed, values)
	return f.reply(cmd.Token)
}

func (f *fakeController) Query(_ context.Context, _ string, token string) (*protocol.Response, error) {
	return f.reply(token)
}

func (f *fakeController) Probe(ctx context.Context, address string) (*protocol.Response, error) {
	resp, err := f.reply("get_caminfo")
	if err != nil {
		return nil, err
	}
	if resp.Outcome == protocol.OutcomeUnparseable {
		return resp, device.ErrNotCamera
	}
	return resp, nil
}

func (f *fakeController) Sweep(_ context.Context, _ string, observe func(device.SweepResult)) ([]device.SweepResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var results []device.SweepResult
	for _, tok := range []string{"get_caminfo", "get_version"} {
		resp, _ := f.reply(tok)
		r := device.SweepResult{Command: tok, Response: *resp}
		if observe != nil {
			observe(r)
		}
		results = append(results, r)
	}
	return results, nil
}

func newTestRouter(ctrl device.Controller) http.Handler {
	return NewRouter(ctrl, catalog.Default(), schema.NewValidator()).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	h := newTestRouter(&fakeController{})

	w := do(t, h, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[types.HealthResponse](t, w)
	if resp.Commands != catalog.Default().Len() {
		t.Errorf("commands = %d", resp.Commands)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected request ID header")
	}
}

func TestRequestID_Propagated(t *testing.T) {
	h := newTestRouter(&fakeController{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q", got)
	}
}

func TestMetrics(t *testing.T) {
	h := newTestRouter(&fakeController{})
	w := do(t, h, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("expected default collectors in metrics output")
	}
}

func TestListCommands(t *testing.T) {
	h := newTestRouter(&fakeController{})

	w := do(t, h, http.MethodGet, "/api/v1/commands", "")
	all := decodeJSON[types.ListCommandsResponse](t, w)
	if all.Count != catalog.Default().Len() {
		t.Errorf("count = %d", all.Count)
	}

	w = do(t, h, http.MethodGet, "/api/v1/commands?category=action", "")
	actions := decodeJSON[types.ListCommandsResponse](t, w)
	for _, c := range actions.Commands {
		if c.Category != catalog.CategoryAction {
			t.Errorf("%s has category %s", c.Key, c.Category)
		}
	}
	if actions.Count == 0 || actions.Count >= all.Count {
		t.Errorf("action count = %d of %d", actions.Count, all.Count)
	}

	w = do(t, h, http.MethodGet, "/api/v1/commands?category=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bogus category status = %d", w.Code)
	}
}

func TestGetCommand(t *testing.T) {
	h := newTestRouter(&fakeController{})

	w := do(t, h, http.MethodGet, "/api/v1/commands/set_night_vision", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[types.CommandResponse](t, w)
	if len(resp.Command.Parameters) != 2 || resp.Command.Parameters[0].Name != "mode" {
		t.Errorf("parameters = %+v", resp.Command.Parameters)
	}
	if len(resp.Schema) == 0 {
		t.Error("expected schema")
	}

	w = do(t, h, http.MethodGet, "/api/v1/commands/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown command status = %d", w.Code)
	}
}

func TestListTokens(t *testing.T) {
	h := newTestRouter(&fakeController{})
	resp := decodeJSON[types.ListTokensResponse](t, do(t, h, http.MethodGet, "/api/v1/tokens", ""))
	if resp.Count != len(catalog.Tokens()) || len(resp.SweepTokens) != len(catalog.SweepTokens()) {
		t.Errorf("count = %d, sweep = %d", resp.Count, len(resp.SweepTokens))
	}
}

func TestValidate(t *testing.T) {
	h := newTestRouter(&fakeController{})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		reason string
	}{
		{"valid", "/api/v1/commands/melody_vol/validate", `{"value": 40}`, http.StatusOK, ""},
		{"missing required", "/api/v1/commands/melody_vol/validate", `{}`, http.StatusBadRequest, catalog.ReasonRequired},
		{"above max", "/api/v1/commands/melody_vol/validate", `{"value": 101}`, http.StatusBadRequest, catalog.ReasonAboveMaximum},
		{"not a number", "/api/v1/commands/melody_vol/validate", `{"value": "loud"}`, http.StatusBadRequest, catalog.ReasonNotANumber},
		{"unknown key", "/api/v1/commands/melody_vol/validate", `{"value": 1, "extra": 2}`, http.StatusBadRequest, ""},
		{"empty body action", "/api/v1/commands/melody1/validate", "", http.StatusOK, ""},
		{"bad json", "/api/v1/commands/melody_vol/validate", `{`, http.StatusBadRequest, ""},
		{"unknown command", "/api/v1/commands/nope/validate", `{}`, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if tt.reason != "" {
				resp := decodeJSON[types.ErrorResponse](t, w)
				if resp.Reason != tt.reason || resp.Param != "value" {
					t.Errorf("error = %+v", resp)
				}
			}
		})
	}
}

func TestEncode(t *testing.T) {
	h := newTestRouter(&fakeController{})

	w := do(t, h, http.MethodPost, "/api/v1/commands/set_night_vision/encode?address=10.0.0.5", `{"mode": 2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeJSON[types.EncodeResponse](t, w)
	if resp.URL != "http://10.0.0.5/?req=set_night_vision&mode=2" {
		t.Errorf("url = %q", resp.URL)
	}

	w = do(t, h, http.MethodPost, "/api/v1/commands/set_night_vision/encode", `{"mode": 2}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing address status = %d", w.Code)
	}
}

func TestDecode(t *testing.T) {
	h := newTestRouter(&fakeController{})

	w := do(t, h, http.MethodPost, "/api/v1/decode",
		`{"command": "get_caminfo", "raw": "get_caminfo: md=1:0:3:0&fw=2.1.0"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[types.ResponseView](t, w)
	if resp.Outcome != protocol.OutcomeOK || len(resp.Fields) != 2 {
		t.Errorf("response = %+v", resp)
	}
	if c, ok := resp.Composites["md"]; !ok || !c.Enabled || c.Sensitivity != 3 {
		t.Errorf("composites = %+v", resp.Composites)
	}

	w = do(t, h, http.MethodPost, "/api/v1/decode", `{"command": "get_version", "raw": "get_version: -1"}`)
	if decodeJSON[types.ResponseView](t, w).Outcome != protocol.OutcomeFailed {
		t.Errorf("expected failed outcome")
	}

	w = do(t, h, http.MethodPost, "/api/v1/decode", `{"raw": "x"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing command status = %d", w.Code)
	}
}

func TestProbe(t *testing.T) {
	ctrl := &fakeController{replies: map[string]string{"get_caminfo": "get_caminfo: fw=2.1.0"}}
	h := newTestRouter(ctrl)

	w := do(t, h, http.MethodGet, "/api/v1/cameras/192.168.1.50", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[types.CameraResponse](t, w)
	if resp.Address != "192.168.1.50" || resp.Response.Outcome != protocol.OutcomeOK {
		t.Errorf("response = %+v", resp)
	}

	ctrl.replies["get_caminfo"] = "<html>"
	if w := do(t, h, http.MethodGet, "/api/v1/cameras/192.168.1.50", ""); w.Code != http.StatusBadGateway {
		t.Errorf("not-a-camera status = %d", w.Code)
	}
}

func TestExecute(t *testing.T) {
	ctrl := &fakeController{replies: map[string]string{"melody_vol": "melody_vol: "}}
	h := newTestRouter(ctrl)

	w := do(t, h, http.MethodPost, "/api/v1/cameras/10.0.0.5:8080/commands/melody_vol", `{"value": 30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeJSON[types.CameraResponse](t, w)
	if resp.Address != "10.0.0.5:8080" || resp.Response.Outcome != protocol.OutcomeEmpty {
		t.Errorf("response = %+v", resp)
	}

	// invalid values never reach the camera
	w = do(t, h, http.MethodPost, "/api/v1/cameras/10.0.0.5/commands/melody_vol", `{"value": 300}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
	if len(ctrl.executed) != 1 {
		t.Errorf("executed %d times, want 1", len(ctrl.executed))
	}
}

func TestExecute_TransportErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{device.ErrTimeout, http.StatusGatewayTimeout},
		{device.ErrUnreachable, http.StatusBadGateway},
		{device.ErrHTTPStatus, http.StatusBadGateway},
		{device.ErrInvalidAddress, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := newTestRouter(&fakeController{err: tt.err})
		w := do(t, h, http.MethodPost, "/api/v1/cameras/10.0.0.5/commands/melody1", "")
		if w.Code != tt.status {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.status)
		}
	}
}

func TestSweep(t *testing.T) {
	ctrl := &fakeController{replies: map[string]string{"get_caminfo": "get_caminfo: fw=2.1.0"}}
	h := newTestRouter(ctrl)

	w := do(t, h, http.MethodPost, "/api/v1/cameras/10.0.0.5/sweep", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeJSON[types.SweepResponse](t, w)
	if resp.Count != 2 || resp.OK != 1 {
		t.Errorf("count = %d, ok = %d", resp.Count, resp.OK)
	}
	if resp.Results[0].Command != "get_caminfo" || resp.Results[1].Command != "get_version" {
		t.Errorf("order = %s, %s", resp.Results[0].Command, resp.Results[1].Command)
	}
}

func TestSweepEvents(t *testing.T) {
	ctrl := &fakeController{replies: map[string]string{"get_caminfo": "get_caminfo: fw=2.1.0"}}
	h := newTestRouter(ctrl)

	w := do(t, h, http.MethodGet, "/api/v1/cameras/10.0.0.5/sweep/events", "")
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}

	var events []string
	sc := bufio.NewScanner(strings.NewReader(w.Body.String()))
	for sc.Scan() {
		if name, ok := strings.CutPrefix(sc.Text(), "event: "); ok {
			events = append(events, name)
		}
	}

	want := []string{"connected", "result", "result", "done"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestSweepEvents_InvalidAddress(t *testing.T) {
	h := newTestRouter(&fakeController{})

	w := do(t, h, http.MethodGet, "/api/v1/cameras/user@host/sweep/events", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("content type = %q, want JSON error", ct)
	}
	if resp := decodeJSON[types.ErrorResponse](t, w); resp.Error != "invalid_address" {
		t.Errorf("error = %q", resp.Error)
	}
}
