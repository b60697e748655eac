package places

import (
	"net/url"
	"strings"
)

// Param is a single URL query parameter. Requests flatten into an ordered
// []Param so the final query string is deterministic.
type Param struct {
	Key   string
	Value string
}

// EncodeParams URL-encodes params, preserving their order.
func EncodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// queryRequest is implemented by every request type. QueryParams validates
// the request and flattens it into ordered query parameters.
type queryRequest interface {
	QueryParams() ([]Param, error)
}
