package camera

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/protocol"
	"golang.org/x/sync/errgroup"
)

// SweepTokens returns the tokens a sweep queries, in result order.
func (c *Controller) SweepTokens() []string {
	out := make([]string, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// Sweep queries every sweepable token against address concurrently, at most
// SweepConcurrency at a time. Each result lands at its token's index, so the
// returned slice is in token order whatever the completion order. A command
// that times out or fails in transport is recorded as unparseable and does
// not stop the others.
//
// Sweeps against the same camera are serialized, however its address is
// spelled: a second call waits for the first to finish or for ctx to end.
func (c *Controller) Sweep(ctx context.Context, address string, observe func(device.SweepResult)) ([]device.SweepResult, error) {
	key, err := c.endpoint(address)
	if err != nil {
		return nil, err
	}

	release, err := c.acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	start := time.Now()
	results := make([]device.SweepResult, len(c.tokens))

	var observeMu sync.Mutex
	var g errgroup.Group
	g.SetLimit(c.opts.SweepConcurrency)

	for i, token := range c.tokens {
		g.Go(func() error {
			t0 := time.Now()
			res := device.SweepResult{Command: token}

			resp, err := c.Query(ctx, address, token)
			if err != nil {
				res.Response = protocol.Unparseable(token, "")
				res.Error = err.Error()
			} else {
				res.Response = *resp
			}
			res.Duration = time.Since(t0)
			results[i] = res

			if observe != nil {
				observeMu.Lock()
				observe(res)
				observeMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	sweepsTotal.Inc()
	log.Info().
		Str("address", address).
		Int("commands", len(results)).
		Dur("latency", time.Since(start)).
		Msg("Sweep finished")

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (c *Controller) acquire(ctx context.Context, key string) (func(), error) {
	c.sweepsMu.Lock()
	slot, ok := c.sweeps[key]
	if !ok {
		slot = make(chan struct{}, 1)
		c.sweeps[key] = slot
	}
	c.sweepsMu.Unlock()

	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
