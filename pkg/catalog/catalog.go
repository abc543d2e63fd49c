package catalog

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownCommand indicates a catalog lookup miss
var ErrUnknownCommand = errors.New("unknown command")

// Category groups commands by how their response is interpreted.
type Category string

const (
	CategoryGet    Category = "get"
	CategorySet    Category = "set"
	CategoryAction Category = "action"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGet, CategorySet, CategoryAction:
		return true
	}
	return false
}

// Kind is the input type of a command parameter.
type Kind string

const (
	KindSelect  Kind = "select"
	KindNumber  Kind = "number"
	KindText    Kind = "text"
	KindBoolean Kind = "boolean"
)

// Param holds the fields common to every parameter kind.
type Param struct {
	Name        string
	Required    bool
	Description string
}

// Info returns the common parameter fields.
func (p Param) Info() Param { return p }

// Parameter is one argument a command accepts. The concrete types are
// SelectParameter, NumberParameter, TextParameter and BooleanParameter.
type Parameter interface {
	Info() Param
	Kind() Kind
}

// Option is a labelled choice for select and boolean parameters.
// Value is either a string or a number, consistently per parameter.
type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// SelectParameter offers a fixed list of options. The options are advisory:
// the camera itself rejects values it does not understand.
type SelectParameter struct {
	Param
	Options []Option
}

func (SelectParameter) Kind() Kind { return KindSelect }

// NumberParameter accepts a number within optional inclusive bounds.
type NumberParameter struct {
	Param
	Min *float64
	Max *float64
}

func (NumberParameter) Kind() Kind { return KindNumber }

// TextParameter accepts free text.
type TextParameter struct {
	Param
}

func (TextParameter) Kind() Kind { return KindText }

// BooleanParameter is a two-way choice.
type BooleanParameter struct {
	Param
	Options []Option
}

func (BooleanParameter) Kind() Kind { return KindBoolean }

// Command is one entry in the catalog.
type Command struct {
	Key         string      // lookup key
	Token       string      // literal value sent as req=<token>
	Description string      // human-readable summary
	Category    Category    // get, set or action
	Parameters  []Parameter // declaration order is the URL order
}

// Parameter returns the declared parameter with the given name.
func (c Command) Parameter(name string) (Parameter, bool) {
	for _, p := range c.Parameters {
		if p.Info().Name == name {
			return p, true
		}
	}
	return nil, false
}

// Catalog is an immutable, ordered registry of commands.
type Catalog struct {
	commands []Command
	index    map[string]int
}

// New builds a catalog from commands, preserving their order.
// It rejects duplicate keys and malformed parameter schemas.
func New(commands []Command) (*Catalog, error) {
	c := &Catalog{
		commands: make([]Command, 0, len(commands)),
		index:    make(map[string]int, len(commands)),
	}

	for _, cmd := range commands {
		if cmd.Key == "" || cmd.Token == "" {
			return nil, fmt.Errorf("command %q: key and token are required", cmd.Key)
		}
		if _, dup := c.index[cmd.Key]; dup {
			return nil, fmt.Errorf("command %q: duplicate key", cmd.Key)
		}
		if !cmd.Category.Valid() {
			return nil, fmt.Errorf("command %q: unknown category %q", cmd.Key, cmd.Category)
		}
		if err := checkParameters(cmd); err != nil {
			return nil, err
		}

		c.index[cmd.Key] = len(c.commands)
		c.commands = append(c.commands, cmd)
	}

	return c, nil
}

func checkParameters(cmd Command) error {
	seen := make(map[string]bool, len(cmd.Parameters))
	for _, p := range cmd.Parameters {
		name := p.Info().Name
		if name == "" {
			return fmt.Errorf("command %q: parameter without a name", cmd.Key)
		}
		if seen[name] {
			return fmt.Errorf("command %q: duplicate parameter %q", cmd.Key, name)
		}
		seen[name] = true

		switch v := p.(type) {
		case SelectParameter:
			if len(v.Options) == 0 {
				return fmt.Errorf("command %q: select parameter %q has no options", cmd.Key, name)
			}
		case NumberParameter:
			if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
				return fmt.Errorf("command %q: parameter %q has min %g > max %g", cmd.Key, name, *v.Min, *v.Max)
			}
		}
	}
	return nil
}

// Lookup returns the command registered under key.
func (c *Catalog) Lookup(key string) (Command, error) {
	i, ok := c.index[key]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, key)
	}
	return c.commands[i], nil
}

// All returns every command in insertion order.
func (c *Catalog) All() []Command {
	out := make([]Command, len(c.commands))
	copy(out, c.commands)
	return out
}

// ByCategory returns the commands of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Command {
	var out []Command
	for _, cmd := range c.commands {
		if cmd.Category == cat {
			out = append(out, cmd)
		}
	}
	return out
}

// Len returns the number of commands.
func (c *Catalog) Len() int {
	return len(c.commands)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(defaultCommands)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in table: %v", err))
	}
	return c
})

// Default returns the built-in camera command catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// ParameterInfo is a flat view of a parameter for serialization.
type ParameterInfo struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Required    bool     `json:"required"`
	Description string   `json:"description,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// Describe flattens a parameter into a ParameterInfo.
func Describe(p Parameter) ParameterInfo {
	info := p.Info()
	out := ParameterInfo{
		Name:        info.Name,
		Kind:        p.Kind(),
		Required:    info.Required,
		Description: info.Description,
	}
	switch v := p.(type) {
	case SelectParameter:
		out.Options = v.Options
	case BooleanParameter:
		out.Options = v.Options
	case NumberParameter:
		out.Min = v.Min
		out.Max = v.Max
	}
	return out
}
