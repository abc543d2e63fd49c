package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/format"
	"github.com/urmzd/kodakam/pkg/protocol"
)

// commandView is the structured form printed for json and yaml output.
type commandView struct {
	Key         string                  `json:"key" yaml:"key"`
	Token       string                  `json:"token" yaml:"token"`
	Category    catalog.Category        `json:"category" yaml:"category"`
	Description string                  `json:"description" yaml:"description"`
	Parameters  []catalog.ParameterInfo `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

func newCommandView(cmd catalog.Command) commandView {
	v := commandView{
		Key:         cmd.Key,
		Token:       cmd.Token,
		Category:    cmd.Category,
		Description: cmd.Description,
	}
	for _, p := range cmd.Parameters {
		v.Parameters = append(v.Parameters, catalog.Describe(p))
	}
	return v
}

type responseView struct {
	Command string        `json:"command" yaml:"command"`
	Outcome string        `json:"outcome" yaml:"outcome"`
	Summary string        `json:"summary" yaml:"summary"`
	Lines   []format.Line `json:"lines,omitempty" yaml:"lines,omitempty"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Raw     string        `json:"raw" yaml:"raw"`
}

func newResponseView(r protocol.Response) responseView {
	return responseView{
		Command: r.Command,
		Outcome: r.Outcome.String(),
		Summary: format.Summary(r),
		Lines:   format.Lines(r),
		Raw:     r.Raw,
	}
}

func (a *app) list(args []string) error {
	if len(args) > 1 {
		return errUsage
	}
	cmds := catalog.Default().All()
	if len(args) == 1 {
		cat := catalog.Category(args[0])
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q (want get, set or action)", cat)
		}
		cmds = catalog.Default().ByCategory(cat)
	}

	var b strings.Builder
	views := make([]commandView, 0, len(cmds))
	for _, cmd := range cmds {
		views = append(views, newCommandView(cmd))
		fmt.Fprintf(&b, "%-24s %-7s %s\n", cmd.Key, cmd.Category, cmd.Description)
	}
	return a.out.print(strings.TrimRight(b.String(), "\n"), views)
}

func (a *app) describe(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	cmd, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s\n  token: %s", cmd.Key, cmd.Category, cmd.Description, cmd.Token)
	for _, p := range cmd.Parameters {
		info := catalog.Describe(p)
		fmt.Fprintf(&b, "\n  %s  %s", info.Name, describeParameter(info))
	}
	return a.out.print(b.String(), newCommandView(cmd))
}

func describeParameter(info catalog.ParameterInfo) string {
	var parts []string
	parts = append(parts, string(info.Kind))
	if info.Required {
		parts = append(parts, "required")
	}
	if info.Min != nil && info.Max != nil {
		parts = append(parts, fmt.Sprintf("%g..%g", *info.Min, *info.Max))
	}
	if len(info.Options) > 0 {
		opts := make([]string, 0, len(info.Options))
		for _, o := range info.Options {
			opts = append(opts, fmt.Sprintf("%v=%s", o.Value, o.Label))
		}
		parts = append(parts, "["+strings.Join(opts, ", ")+"]")
	}
	if info.Description != "" {
		parts = append(parts, info.Description)
	}
	return strings.Join(parts, "  ")
}

func (a *app) tokens() error {
	tokens := catalog.Tokens()
	var b strings.Builder
	for _, t := range tokens {
		fmt.Fprintf(&b, "%-32s %s\n", t.Name, t.Wire)
	}
	return a.out.print(strings.TrimRight(b.String(), "\n"), tokens)
}

// commandArgs parses "<address> <command> [-p name=value ...]" and validates
// the values.
func commandArgs(name string, args []string) (string, catalog.Command, catalog.Values, error) {
	if len(args) < 2 {
		return "", catalog.Command{}, nil, errUsage
	}
	address, key := args[0], args[1]

	values := catalog.Values{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(paramsFlag(values), "p", "parameter name=value (repeatable)")
	if err := fs.Parse(args[2:]); err != nil {
		return "", catalog.Command{}, nil, err
	}

	cmd, err := catalog.Default().Lookup(key)
	if err != nil {
		return "", catalog.Command{}, nil, err
	}
	if err := catalog.Validate(cmd, values); err != nil {
		return "", catalog.Command{}, nil, err
	}
	for k := range values {
		if _, ok := cmd.Parameter(k); !ok {
			return "", catalog.Command{}, nil, fmt.Errorf("%s has no parameter %q", cmd.Key, k)
		}
	}
	return address, cmd, values, nil
}

func (a *app) encode(args []string) error {
	address, cmd, values, err := commandArgs("encode", args)
	if err != nil {
		return err
	}
	base, err := a.controller.BaseURL(address)
	if err != nil {
		return err
	}
	url := protocol.Encode(base, cmd, values)
	return a.out.print(url, map[string]string{"command": cmd.Key, "url": url})
}

func (a *app) decode(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	token := args[0]
	if cmd, err := catalog.Default().Lookup(token); err == nil {
		token = cmd.Token
	}
	resp := protocol.Decode(token, args[1])
	return a.out.print(format.Text(resp), newResponseView(resp))
}

func (a *app) probe(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	resp, err := a.controller.Probe(ctx, args[0])
	if err != nil {
		if errors.Is(err, device.ErrNotCamera) && resp != nil {
			return fmt.Errorf("%w (reply: %q)", err, resp.Raw)
		}
		return err
	}
	return a.out.print(format.Text(*resp), newResponseView(*resp))
}

func (a *app) exec(ctx context.Context, args []string) error {
	address, cmd, values, err := commandArgs("exec", args)
	if err != nil {
		return err
	}
	resp, err := a.controller.Execute(ctx, address, cmd, values)
	if err != nil {
		return err
	}
	return a.out.print(format.Text(*resp), newResponseView(*resp))
}

func (a *app) query(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	resp, err := a.controller.Query(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.out.print(format.Text(*resp), newResponseView(*resp))
}

func (a *app) sweep(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	onlyOK := fs.Bool("ok", false, "only show commands that returned data")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	results, err := a.controller.Sweep(ctx, args[0], nil)
	if err != nil {
		return err
	}

	var b strings.Builder
	views := make([]responseView, 0, len(results))
	for _, r := range results {
		if *onlyOK && r.Response.Outcome != protocol.OutcomeOK {
			continue
		}
		v := newResponseView(r.Response)
		v.Error = r.Error
		views = append(views, v)

		b.WriteString(format.Text(r.Response))
		if r.Error != "" {
			fmt.Fprintf(&b, " (%s)", r.Error)
		}
		b.WriteString("\n")
	}
	return a.out.print(strings.TrimRight(b.String(), "\n"), views)
}
