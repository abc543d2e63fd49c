package main

import (
	"fmt"
	"strings"

	"github.com/urmzd/kodakam/pkg/catalog"
)

// paramsFlag collects repeated -p name=value flags.
type paramsFlag catalog.Values

func (p paramsFlag) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (p paramsFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("parameter %q must be name=value", s)
	}
	p[name] = value
	return nil
}
