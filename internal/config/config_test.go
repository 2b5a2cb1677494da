package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if p != Defaults {
		t.Fatalf("got %+v, want %+v", p, Defaults)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helix.yaml")
	if err := os.WriteFile(path, []byte("ell: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Ell != 5 {
		t.Fatalf("Ell = %d, want 5", p.Ell)
	}
	if p.Epsilon != Defaults.Epsilon || p.UseEC != Defaults.UseEC {
		t.Fatalf("unspecified fields should fall back to defaults: %+v", p)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestBindFlagsOverridesConfig(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	apply := BindFlags(fs)
	if err := fs.Parse([]string{"--ell", "4", "--no-ec"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := apply(Defaults)
	if got.Ell != 4 {
		t.Fatalf("Ell = %d, want 4", got.Ell)
	}
	if got.UseEC {
		t.Fatalf("expected UseEC=false after --no-ec")
	}
	if got.Epsilon != Defaults.Epsilon {
		t.Fatalf("Epsilon should be untouched, got %v", got.Epsilon)
	}
}

func TestResolveValidatesResult(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	apply := BindFlags(fs)
	if err := fs.Parse([]string{"--ell", "1"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Resolve("", apply); err == nil {
		t.Fatalf("expected validation to reject ell=1")
	}
}
