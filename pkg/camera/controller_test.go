package camera

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// fakeCamera answers ?req=<token> with "<token>: <reply>".
func fakeCamera(t *testing.T, replies map[string]string) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("req")
		reply, ok := replies[token]
		if !ok {
			fmt.Fprintf(w, "%s: -1", token)
			return
		}
		fmt.Fprintf(w, "%s: %s", token, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, srv.Listener.Addr().String()
}

func mustCommand(t *testing.T, key string) catalog.Command {
	t.Helper()
	cmd, err := catalog.Default().Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController(Options{})
	opts := c.Options()
	if opts.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %s", opts.RequestTimeout)
	}
	if opts.SweepConcurrency != DefaultSweepConcurrency {
		t.Errorf("SweepConcurrency = %d", opts.SweepConcurrency)
	}
	if opts.Port != DefaultPort {
		t.Errorf("Port = %d", opts.Port)
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		port    int
		address string
		want    string
		wantErr bool
	}{
		{0, "192.168.1.50", "http://192.168.1.50/", false},
		{8080, "192.168.1.50", "http://192.168.1.50:8080/", false},
		{8080, "192.168.1.50:81", "http://192.168.1.50:81/", false},
		{0, "cam.local", "http://cam.local/", false},
		{0, "", "", true},
		{0, "host/path", "", true},
		{0, "user@host", "", true},
		{0, ":80", "", true},
	}

	for _, tt := range tests {
		c := NewController(Options{Port: tt.port})
		got, err := c.BaseURL(tt.address)
		if tt.wantErr {
			if !errors.Is(err, device.ErrInvalidAddress) {
				t.Errorf("BaseURL(%q) err = %v, want ErrInvalidAddress", tt.address, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("BaseURL(%q): %v", tt.address, err)
			continue
		}
		if got != tt.want {
			t.Errorf("BaseURL(%q) = %q, want %q", tt.address, got, tt.want)
		}
	}
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		port    int
		address string
		want    string
	}{
		{0, "192.168.1.50", "192.168.1.50:80"},
		{0, "192.168.1.50:80", "192.168.1.50:80"},
		{0, " 192.168.1.50 ", "192.168.1.50:80"},
		{0, "Cam.Local", "cam.local:80"},
		{8080, "192.168.1.50", "192.168.1.50:8080"},
		{8080, "192.168.1.50:08080", "192.168.1.50:8080"},
		{0, "::1", "[::1]:80"},
	}

	for _, tt := range tests {
		c := NewController(Options{Port: tt.port})
		got, err := c.endpoint(tt.address)
		if err != nil {
			t.Errorf("endpoint(%q): %v", tt.address, err)
			continue
		}
		if got != tt.want {
			t.Errorf("endpoint(%q) = %q, want %q", tt.address, got, tt.want)
		}
	}
}

func TestExecute_EncodesParameters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		if r.Header.Get("Accept") != "text/plain" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		fmt.Fprint(w, "set_night_vision: 0")
	}))
	defer srv.Close()

	c := NewController(Options{})
	resp, err := c.Execute(context.Background(), srv.Listener.Addr().String(),
		mustCommand(t, "set_night_vision"), catalog.Values{"mode": 2, "intensity": "75"})
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery != "req=set_night_vision&mode=2&intensity=75" {
		t.Errorf("query = %q", gotQuery)
	}
	if resp.Outcome != protocol.OutcomeOK {
		t.Errorf("outcome = %s", resp.Outcome)
	}
}

func TestQuery_Outcomes(t *testing.T) {
	_, addr := fakeCamera(t, map[string]string{
		"get_caminfo":  "md=1:0:3:0&sd=0:0:1:0&fw=2.1.0",
		"melody1":      "",
		"get_temp_hum": "-1",
	})
	c := NewController(Options{})

	tests := []struct {
		token string
		want  protocol.Outcome
	}{
		{"get_caminfo", protocol.OutcomeOK},
		{"melody1", protocol.OutcomeEmpty},
		{"get_temp_hum", protocol.OutcomeFailed},
		{"unknown_token", protocol.OutcomeFailed},
	}
	for _, tt := range tests {
		resp, err := c.Query(context.Background(), addr, tt.token)
		if err != nil {
			t.Errorf("%s: %v", tt.token, err)
			continue
		}
		if resp.Outcome != tt.want {
			t.Errorf("%s: outcome = %s, want %s", tt.token, resp.Outcome, tt.want)
		}
	}
}

func TestQuery_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewController(Options{})
	_, err := c.Query(context.Background(), srv.Listener.Addr().String(), "get_version")
	if !errors.Is(err, device.ErrHTTPStatus) {
		t.Errorf("err = %v, want ErrHTTPStatus", err)
	}
}

func TestQuery_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewController(Options{RequestTimeout: 50 * time.Millisecond})
	_, err := c.Query(context.Background(), srv.Listener.Addr().String(), "get_version")
	if !errors.Is(err, device.ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestQuery_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.Listener.Addr().String()
	srv.Close()

	c := NewController(Options{RequestTimeout: time.Second})
	_, err := c.Query(context.Background(), addr, "get_version")
	if !errors.Is(err, device.ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
}

func TestProbe(t *testing.T) {
	_, camAddr := fakeCamera(t, map[string]string{"get_caminfo": "fw=2.1.0&mac=00:11:22"})

	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>router login</html>")
	}))
	defer other.Close()

	c := NewController(Options{})

	resp, err := c.Probe(context.Background(), camAddr)
	if err != nil {
		t.Fatalf("probe camera: %v", err)
	}
	if v, _ := resp.Get("fw"); v != "2.1.0" {
		t.Errorf("fw = %q", v)
	}

	resp, err = c.Probe(context.Background(), other.Listener.Addr().String())
	if !errors.Is(err, device.ErrNotCamera) {
		t.Fatalf("err = %v, want ErrNotCamera", err)
	}
	if resp == nil || !strings.Contains(resp.Raw, "router login") {
		t.Errorf("expected raw reply to be kept, got %+v", resp)
	}
}

func TestSweep_OrderAndCoverage(t *testing.T) {
	_, addr := fakeCamera(t, map[string]string{
		"get_caminfo": "fw=2.1.0",
		"get_version": "ver=1.0",
	})
	c := NewController(Options{SweepConcurrency: 4})

	var observed atomic.Int32
	results, err := c.Sweep(context.Background(), addr, func(device.SweepResult) {
		observed.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}

	tokens := c.SweepTokens()
	if len(results) != len(tokens) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(tokens))
	}
	for i, tok := range tokens {
		if results[i].Command != tok {
			t.Errorf("results[%d].Command = %q, want %q", i, results[i].Command, tok)
		}
	}
	if int(observed.Load()) != len(tokens) {
		t.Errorf("observed %d results, want %d", observed.Load(), len(tokens))
	}
}

func TestSweep_PartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("req")
		if token == "get_version" {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		fmt.Fprintf(w, "%s: ok=1", token)
	}))
	defer srv.Close()

	c := NewController(Options{RequestTimeout: 100 * time.Millisecond})
	results, err := c.Sweep(context.Background(), srv.Listener.Addr().String(), nil)
	if err != nil {
		t.Fatal(err)
	}

	var failed, ok int
	for _, r := range results {
		switch {
		case r.Command == "get_version":
			failed++
			if r.Response.Outcome != protocol.OutcomeUnparseable || r.Error == "" {
				t.Errorf("get_version: outcome=%s error=%q", r.Response.Outcome, r.Error)
			}
		case r.Response.Outcome == protocol.OutcomeOK:
			ok++
		}
	}
	if failed != 1 {
		t.Errorf("expected get_version in sweep, found %d", failed)
	}
	if ok != len(results)-1 {
		t.Errorf("ok = %d, want %d", ok, len(results)-1)
	}
}

func TestSweep_ConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		fmt.Fprintf(w, "%s: x=1", r.URL.Query().Get("req"))
	}))
	defer srv.Close()

	c := NewController(Options{SweepConcurrency: 3})
	if _, err := c.Sweep(context.Background(), srv.Listener.Addr().String(), nil); err != nil {
		t.Fatal(err)
	}
	if peak.Load() > 3 {
		t.Errorf("peak in-flight = %d, want <= 3", peak.Load())
	}
}

func TestSweep_SameAddressSerialized(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)
		fmt.Fprintf(w, "%s: x=1", r.URL.Query().Get("req"))
	}))
	defer srv.Close()

	// concurrency 1 per sweep: any overlap comes from a second sweep
	c := NewController(Options{SweepConcurrency: 1})
	addr := srv.Listener.Addr().String()

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Sweep(context.Background(), addr, nil); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if peak.Load() != 1 {
		t.Errorf("peak in-flight = %d, want 1", peak.Load())
	}
}

func TestSweep_SameCameraDifferentSpellings(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)
		fmt.Fprintf(w, "%s: x=1", r.URL.Query().Get("req"))
	}))
	defer srv.Close()

	tcp := srv.Listener.Addr().(*net.TCPAddr)
	host := tcp.IP.String()
	c := NewController(Options{SweepConcurrency: 1, Port: tcp.Port})

	var wg sync.WaitGroup
	for _, addr := range []string{host, srv.Listener.Addr().String(), " " + host} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Sweep(context.Background(), addr, nil); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if peak.Load() != 1 {
		t.Errorf("peak in-flight = %d, want 1", peak.Load())
	}
}

func TestSweep_CancelledWhileWaiting(t *testing.T) {
	_, addr := fakeCamera(t, nil)
	c := NewController(Options{})

	release, err := c.acquire(context.Background(), addr)
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.Sweep(ctx, addr, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want DeadlineExceeded", err)
	}
}

func TestSweep_InvalidAddress(t *testing.T) {
	c := NewController(Options{})
	if _, err := c.Sweep(context.Background(), "", nil); !errors.Is(err, device.ErrInvalidAddress) {
		t.Errorf("err = %v, want ErrInvalidAddress", err)
	}
}
