package device

import (
	"time"

	"github.com/urmzd/kodakam/pkg/protocol"
)

// SweepResult is the outcome of one command in a bulk sweep. Transport
// failures are recorded as an unparseable response with Error set.
type SweepResult struct {
	Command  string            `json:"command"`
	Response protocol.Response `json:"response"`
	Error    string            `json:"error,omitempty"`
	Duration time.Duration     `json:"duration_ns"`
}

// SweepEvent is streamed to clients while a sweep is running.
type SweepEvent struct {
	Type      string       `json:"type"`             // result, done
	Address   string       `json:"address"`          // camera address
	Result    *SweepResult `json:"result,omitempty"` // set for result events
	Timestamp time.Time    `json:"timestamp"`
}

// Sweep event types
const (
	SweepEventResult = "result"
	SweepEventDone   = "done"
)
