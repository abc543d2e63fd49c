package protocol

import (
	"net/url"
	"strings"
)

// Field is one key/value pair from a camera response.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Tokenize splits a key=value&key=value fragment into ordered fields.
//
// Keys are kept verbatim and values are query-unescaped ("+" is a space).
// Duplicate keys and empty values are preserved, a piece without "=" becomes
// a key with an empty value, and the trailing "&" the firmware appends is
// ignored.
func Tokenize(fragment string) []Field {
	pieces := strings.Split(fragment, "&")
	if n := len(pieces); pieces[n-1] == "" {
		pieces = pieces[:n-1]
	}

	fields := make([]Field, 0, len(pieces))
	for _, piece := range pieces {
		key, value, _ := strings.Cut(piece, "=")
		fields = append(fields, Field{Key: key, Value: unescape(value)})
	}
	return fields
}

func unescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		// Malformed escapes are left as the camera sent them.
		return s
	}
	return v
}
