package device

import (
	"context"

	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// Controller talks to cameras over their HTTP control protocol.
// Addresses are opaque host or host:port strings handed in by the caller;
// the controller performs no discovery.
type Controller interface {
	// BaseURL validates address and returns the request base it maps to
	BaseURL(address string) (string, error)

	// Execute sends a catalog command with its parameter values and decodes the reply
	Execute(ctx context.Context, address string, cmd catalog.Command, values catalog.Values) (*protocol.Response, error)

	// Query sends a parameterless raw wire token
	Query(ctx context.Context, address, token string) (*protocol.Response, error)

	// Probe checks that address answers get_caminfo like a camera
	Probe(ctx context.Context, address string) (*protocol.Response, error)

	// Sweep queries every sweepable get_ token concurrently. observe, if
	// non-nil, is called once per command as results complete.
	Sweep(ctx context.Context, address string, observe func(SweepResult)) ([]SweepResult, error)
}
