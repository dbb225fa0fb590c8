package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/healthchecker/internal/domain"
)

var ErrNoEndpoints = errors.New("no endpoints configured")

// LoadEndpoints reads the endpoints file: a YAML sequence of endpoint
// mappings. The result is validated and normalized.
func LoadEndpoints(path string) ([]domain.Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}
	return ParseEndpoints(data)
}

// ParseEndpoints decodes, validates and normalizes endpoint YAML.
func ParseEndpoints(data []byte) ([]domain.Endpoint, error) {
	var eps []domain.Endpoint
	if err := yaml.Unmarshal(data, &eps); err != nil {
		return nil, fmt.Errorf("parse endpoints: %w", err)
	}
	if err := Validate(eps); err != nil {
		return nil, err
	}
	Normalize(eps)
	return eps, nil
}

// Validate reports every broken endpoint at once. It MUST NOT mutate eps.
func Validate(eps []domain.Endpoint) error {
	if len(eps) == 0 {
		return ErrNoEndpoints
	}
	var errs error
	for i, ep := range eps {
		raw := strings.TrimSpace(ep.URL)
		if raw == "" {
			errs = multierr.Append(errs, fmt.Errorf("endpoint %d (%q): url is required", i, ep.Name))
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("endpoint %d (%q): %w", i, ep.Label(), err))
			continue
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			errs = multierr.Append(errs, fmt.Errorf("endpoint %d (%q): scheme must be http or https", i, ep.Label()))
		}
		if u.Host == "" {
			errs = multierr.Append(errs, fmt.Errorf("endpoint %d (%q): missing host", i, ep.Label()))
		}
		if ep.Method != "" && strings.ContainsAny(strings.TrimSpace(ep.Method), " \t/") {
			errs = multierr.Append(errs, fmt.Errorf("endpoint %d (%q): invalid method %q", i, ep.Label(), ep.Method))
		}
	}
	return errs
}

// Normalize trims fields and fills defaults. Call it after Validate.
func Normalize(eps []domain.Endpoint) {
	for i := range eps {
		e := &eps[i]
		e.URL = strings.TrimSpace(e.URL)
		e.Name = strings.TrimSpace(e.Name)
		e.Method = e.HTTPMethod()
		if e.Headers == nil {
			e.Headers = map[string]string{}
		}
	}
}
