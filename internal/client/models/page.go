package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Page is the paginated envelope of list endpoints.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether the server advertised another page.
func (p *Page[T]) HasNext() bool {
	return p != nil && p.Next != nil && *p.Next != ""
}

// DecodePage unwraps a list response. Paginated endpoints send an envelope
// with "results"; others send a bare array, which becomes a single page.
// An envelope without "results" yields an empty page.
func DecodePage[T any](raw []byte) (*Page[T], error) {
	raw = bytes.TrimSpace(raw)
	page := &Page[T]{}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		page.Results = []T{}
		return page, nil
	}

	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &page.Results); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		page.Count = len(page.Results)
		return page, nil
	}

	if err := json.Unmarshal(raw, page); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	if page.Results == nil {
		page.Results = []T{}
	}
	return page, nil
}
