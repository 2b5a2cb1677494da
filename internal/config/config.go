// Package config resolves the codec's runtime Params from three
// layers, each overriding the last: built-in defaults, an optional YAML
// file, and command-line flags. This mirrors the layering direwolf's
// own CLI tools use (gen_packets.go builds its config entirely from
// pflag; deviceid.go loads supplementary data from a YAML file found on
// a search path) collapsed into a single resolution pass.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/minminlittleshrimp/helix/codec"
)

// Defaults are the built-in fallback values, used when neither a config
// file nor a flag supplies a setting.
var Defaults = codec.Params{
	Ell:     3,
	Epsilon: 0.05,
	UseEC:   true,
}

// fileParams mirrors codec.Params but with optional fields, so the YAML
// loader can tell "absent" apart from "explicitly zero".
type fileParams struct {
	Ell     *int     `yaml:"ell"`
	Epsilon *float64 `yaml:"epsilon"`
	UseEC   *bool    `yaml:"use_ec"`
}

// Load reads a YAML config file at path, if non-empty, then applies it
// on top of Defaults. A missing path is not an error; it simply yields
// Defaults unchanged.
func Load(path string) (codec.Params, error) {
	p := Defaults
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return codec.Params{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var fp fileParams
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return codec.Params{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if fp.Ell != nil {
		p.Ell = *fp.Ell
	}
	if fp.Epsilon != nil {
		p.Epsilon = *fp.Epsilon
	}
	if fp.UseEC != nil {
		p.UseEC = *fp.UseEC
	}
	return p, nil
}

// BindFlags registers the CLI flags that can override Params onto fs,
// returning a closure the caller applies after fs.Parse. Flags
// left at their zero value (config-path aside) are distinguished from
// explicitly-set flags via fs.Changed, so that a flag not passed on the
// command line does not stomp a value already loaded from a config file.
func BindFlags(fs *pflag.FlagSet) func(base codec.Params) codec.Params {
	ell := fs.IntP("ell", "l", 0, "max homopolymer run length (overrides config/defaults)")
	epsilon := fs.Float64P("epsilon", "e", 0, "GC-content tolerance around 0.5 (overrides config/defaults)")
	noEC := fs.Bool("no-ec", false, "disable the VT error-detection suffix")
	useEC := fs.Bool("use-ec", false, "force-enable the VT error-detection suffix")

	return func(base codec.Params) codec.Params {
		p := base
		if fs.Changed("ell") {
			p.Ell = *ell
		}
		if fs.Changed("epsilon") {
			p.Epsilon = *epsilon
		}
		if fs.Changed("no-ec") && *noEC {
			p.UseEC = false
		}
		if fs.Changed("use-ec") && *useEC {
			p.UseEC = true
		}
		return p
	}
}

// Resolve runs the full three-layer resolution: defaults, then
// configPath (if set), then flags already bound and parsed via
// BindFlags/fs.Parse.
func Resolve(configPath string, applyFlags func(codec.Params) codec.Params) (codec.Params, error) {
	p, err := Load(configPath)
	if err != nil {
		return codec.Params{}, err
	}
	if applyFlags != nil {
		p = applyFlags(p)
	}
	if err := p.Validate(); err != nil {
		return codec.Params{}, err
	}
	return p, nil
}
