package domain

import (
	"net/http"
	"strings"
)

// Endpoint describes one target to probe. It is loaded once from the
// endpoints file and never mutated afterwards.
type Endpoint struct {
	Name    string            `yaml:"name" json:"name,omitempty"`
	URL     string            `yaml:"url" json:"url"`
	Method  string            `yaml:"method" json:"method,omitempty"`
	Headers map[string]string `yaml:"headers" json:"headers,omitempty"`
	Body    string            `yaml:"body" json:"body,omitempty"` // JSON text, optional
}

// Label is the name used in log lines; falls back to the URL.
func (e Endpoint) Label() string {
	if strings.TrimSpace(e.Name) == "" {
		return e.URL
	}
	return e.Name
}

// HTTPMethod returns the configured verb, GET when unset.
func (e Endpoint) HTTPMethod() string {
	m := strings.ToUpper(strings.TrimSpace(e.Method))
	if m == "" {
		return http.MethodGet
	}
	return m
}

// Domain is the aggregation key for this endpoint.
func (e Endpoint) Domain() string {
	return DomainOf(e.URL)
}
