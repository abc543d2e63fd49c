package protocol

import (
	"net/url"
	"strings"

	"github.com/urmzd/kodakam/pkg/catalog"
)

// BaseURL returns the request base for a camera address (host or host:port).
func BaseURL(address string) string {
	return "http://" + address + "/"
}

// Encode builds the request URL for cmd. Parameters are appended in
// declaration order; absent or empty values are omitted so the camera keeps
// its current setting, and keys outside the schema are never sent.
func Encode(base string, cmd catalog.Command, values catalog.Values) string {
	var b strings.Builder
	b.WriteString(EncodeToken(base, cmd.Token))

	for _, p := range cmd.Parameters {
		name := p.Info().Name
		v, ok := values.Lookup(name)
		if !ok {
			continue
		}
		b.WriteByte('&')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}

	return b.String()
}

// EncodeToken builds a parameterless request for a raw wire token.
func EncodeToken(base, token string) string {
	return base + "?req=" + token
}
