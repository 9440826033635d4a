package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgwunna/portfolio/internal/version"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != version.String() {
		t.Errorf("version output = %q, want %q", got, version.String())
	}
}

func TestBuildCommand(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_LEVEL", "error")
	t.Setenv("PORTFOLIO_PRETTY_LOG", "false")
	out := t.TempDir()

	root := newRootCmd()
	root.SetArgs([]string{"build", "--out", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, rel := range []string{"index.html", "about/index.html", "projects/index.html", "404.html", "partials/footer.html"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not written: %v", rel, err)
		}
	}
}

func TestBuildCommandMissingContent(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_LEVEL", "error")
	t.Setenv("PORTFOLIO_PRETTY_LOG", "false")

	root := newRootCmd()
	root.SetArgs([]string{"build", "--out", t.TempDir(), "--content", filepath.Join(t.TempDir(), "missing.yaml")})
	if err := root.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want error for missing content file")
	}
}
