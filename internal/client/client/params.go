package client

import (
	"fmt"
	"net/url"
	"strings"
)

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered query string. Encode keeps insertion order, so
// Params{}.With("search", "react").With("page", 2) encodes to
// "search=react&page=2".
type Params struct {
	pairs []Param
}

// With returns a copy of p with key set to value. An existing key keeps its
// position and takes the new value.
func (p Params) With(key string, value any) Params {
	s := fmt.Sprint(value)

	pairs := make([]Param, len(p.pairs), len(p.pairs)+1)
	copy(pairs, p.pairs)

	for i := range pairs {
		if pairs[i].Key == key {
			pairs[i].Value = s
			return Params{pairs: pairs}
		}
	}
	return Params{pairs: append(pairs, Param{Key: key, Value: s})}
}

// Len is the number of parameters.
func (p Params) Len() int { return len(p.pairs) }

// Get returns the value for key, or "" when absent.
func (p Params) Get(key string) string {
	for _, pair := range p.pairs {
		if pair.Key == key {
			return pair.Value
		}
	}
	return ""
}

func (p Params) Encode() string {
	var sb strings.Builder
	for i, pair := range p.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(pair.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(pair.Value))
	}
	return sb.String()
}

func withQuery(path string, p Params) string {
	if p.Len() == 0 {
		return path
	}
	return path + "?" + p.Encode()
}
