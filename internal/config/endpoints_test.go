package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/hamed0406/healthchecker/internal/domain"
)

const sample = `
- name: a health
  url: https://a.example/health
  method: post
  headers:
    X-Token: abc
  body: '{"foo": "bar"}'
- url: https://b.example/
`

func TestLoadEndpoints_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	eps, err := LoadEndpoints(path)
	if err != nil {
		t.Fatalf("LoadEndpoints: %v", err)
	}
	if len(eps) != 2 {
		t.Fatalf("want 2 endpoints, got %d", len(eps))
	}
	a, b := eps[0], eps[1]
	if a.Name != "a health" || a.Method != "POST" || a.Headers["X-Token"] != "abc" || a.Body != `{"foo": "bar"}` {
		t.Fatalf("unexpected first endpoint %+v", a)
	}
	if b.Method != "GET" || b.Headers == nil || b.Label() != "https://b.example/" {
		t.Fatalf("defaults not applied %+v", b)
	}
}

func TestLoadEndpoints_MissingFile(t *testing.T) {
	if _, err := LoadEndpoints(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseEndpoints_BadYAML(t *testing.T) {
	if _, err := ParseEndpoints([]byte("- url: [oops")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseEndpoints_Empty(t *testing.T) {
	if _, err := ParseEndpoints([]byte("")); !errors.Is(err, ErrNoEndpoints) {
		t.Fatalf("want ErrNoEndpoints, got %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	eps := []domain.Endpoint{
		{Name: "no url"},
		{URL: "ftp://files.example/"},
		{URL: "https://ok.example/"},
		{URL: "https:///path-only"},
		{URL: "https://ok.example/", Method: "GE T"},
	}
	err := Validate(eps)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	if n := len(multierr.Errors(err)); n != 4 {
		t.Fatalf("want 4 errors, got %d: %v", n, err)
	}
	if !strings.Contains(err.Error(), "url is required") {
		t.Fatalf("missing url error not reported: %v", err)
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	eps := []domain.Endpoint{{URL: " https://a.example/ ", Method: "get"}}
	if err := Validate(eps); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if eps[0].URL != " https://a.example/ " || eps[0].Method != "get" {
		t.Fatalf("Validate mutated input: %+v", eps[0])
	}
}
