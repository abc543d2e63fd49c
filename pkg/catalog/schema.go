package catalog

import "encoding/json"

// Schema returns a JSON Schema document for the command's parameter object.
// It only constrains shape (known keys, scalar values); required-ness and
// numeric bounds are left to Validate so failures name the parameter.
func (c Command) Schema() json.RawMessage {
	props := make(map[string]any, len(c.Parameters))
	for _, p := range c.Parameters {
		info := p.Info()
		prop := map[string]any{
			"type": []string{"string", "number", "boolean"},
		}
		if info.Description != "" {
			prop["description"] = info.Description
		}
		props[info.Name] = prop
	}

	doc := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}
