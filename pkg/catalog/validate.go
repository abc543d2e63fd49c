package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrValidation matches every *ValidationError
var ErrValidation = errors.New("validation error")

// Validation failure reasons.
const (
	ReasonRequired     = "required"
	ReasonNotANumber   = "not a number"
	ReasonBelowMinimum = "below minimum"
	ReasonAboveMaximum = "above maximum"
)

// ValidationError names the first parameter that failed validation.
type ValidationError struct {
	Param  string
	Reason string
	Limit  *float64 // the violated bound, for range failures
}

func (e *ValidationError) Error() string {
	if e.Limit != nil {
		return fmt.Sprintf("parameter %q: %s %g", e.Param, e.Reason, *e.Limit)
	}
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Values maps parameter names to caller-supplied values. Values are
// strings or numbers; bools and integers are accepted too.
type Values map[string]any

// Lookup returns the wire form of a value and whether it is present and
// non-empty.
func (v Values) Lookup(name string) (string, bool) {
	raw, ok := v[name]
	if !ok || raw == nil {
		return "", false
	}
	s := formatValue(raw)
	return s, s != ""
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Validate checks values against the command's parameter schema. Parameters
// are checked in declaration order and the first failure is returned.
// Select, text and boolean values are only checked for presence.
func Validate(cmd Command, values Values) error {
	for _, p := range cmd.Parameters {
		info := p.Info()
		s, present := values.Lookup(info.Name)
		if !present {
			if info.Required {
				return &ValidationError{Param: info.Name, Reason: ReasonRequired}
			}
			continue
		}

		num, ok := p.(NumberParameter)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return &ValidationError{Param: info.Name, Reason: ReasonNotANumber}
		}
		if num.Min != nil && f < *num.Min {
			return &ValidationError{Param: info.Name, Reason: ReasonBelowMinimum, Limit: num.Min}
		}
		if num.Max != nil && f > *num.Max {
			return &ValidationError{Param: info.Name, Reason: ReasonAboveMaximum, Limit: num.Max}
		}
	}
	return nil
}
