package protocol

import (
	"fmt"
	"strings"
)

// Outcome classifies a decoded camera response.
type Outcome int

const (
	OutcomeUnparseable Outcome = iota // reply lacks the "<command>: " prefix
	OutcomeOK                         // reply carried fields
	OutcomeFailed                     // payload was the -1 sentinel
	OutcomeEmpty                      // payload was empty
)

var outcomeNames = [...]string{
	OutcomeUnparseable: "unparseable",
	OutcomeOK:          "ok",
	OutcomeFailed:      "failed",
	OutcomeEmpty:       "empty",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	for i, name := range outcomeNames {
		if name == string(b) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", b)
}

// FailedSentinel is the payload a camera returns for a failed or
// unsupported command.
const FailedSentinel = "-1"

// Response is a decoded camera reply.
type Response struct {
	Command string  `json:"command"`
	Outcome Outcome `json:"outcome"`
	Fields  []Field `json:"fields,omitempty"`
	Raw     string  `json:"raw"`
}

// Unparseable returns the response used when a reply cannot be read at all.
func Unparseable(token, raw string) Response {
	return Response{Command: token, Outcome: OutcomeUnparseable, Raw: raw}
}

// Decode interprets the raw reply to the command token. It accepts any
// input and always returns one of the four outcomes.
func Decode(token, raw string) Response {
	_, payload, found := strings.Cut(raw, token+": ")
	if !found {
		return Unparseable(token, raw)
	}

	resp := Response{Command: token, Raw: raw}
	switch payload = strings.TrimSpace(payload); payload {
	case FailedSentinel:
		resp.Outcome = OutcomeFailed
	case "":
		resp.Outcome = OutcomeEmpty
	default:
		resp.Outcome = OutcomeOK
		resp.Fields = Tokenize(payload)
	}
	return resp
}

// Get returns the first value recorded for key.
func (r Response) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Map collapses the fields into a map; later duplicates win.
func (r Response) Map() map[string]string {
	m := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Key] = f.Value
	}
	return m
}
