package protocol

import (
	"strconv"
	"strings"
)

// Composite is a colon-delimited detection setting, e.g. md=0:0:3:0.
type Composite struct {
	Enabled     bool `json:"enabled"`
	Schedule    int  `json:"schedule"`
	Sensitivity int  `json:"sensitivity"`
	Reserved    int  `json:"reserved"`
}

// CompositeKeys are the caminfo keys known to carry a Composite:
// motion, sound, temperature and low-battery detection.
var CompositeKeys = []string{"md", "sd", "td", "lbd"}

// InterpretComposite parses enabled:schedule:sensitivity:reserved. It reports
// false unless the value has exactly four integer parts.
func InterpretComposite(raw string) (Composite, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) != 4 {
		return Composite{}, false
	}

	var n [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Composite{}, false
		}
		n[i] = v
	}

	return Composite{
		Enabled:     n[0] != 0,
		Schedule:    n[1],
		Sensitivity: n[2],
		Reserved:    n[3],
	}, true
}

// Composites interprets every known composite key present in the response.
func (r Response) Composites() map[string]Composite {
	out := make(map[string]Composite)
	for _, key := range CompositeKeys {
		raw, ok := r.Get(key)
		if !ok {
			continue
		}
		if c, ok := InterpretComposite(raw); ok {
			out[key] = c
		}
	}
	return out
}
