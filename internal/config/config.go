// Package config loads convlint's project configuration. A convlint.yaml at
// the project root configures the namespace rule and per-rule severities;
// CONVLINT_* environment variables override file values. An absent file is
// not an error: the namespace rule simply stays disabled unless a package
// carries its own config directive.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/convlint/convlint/internal/convrules"
	"github.com/convlint/convlint/internal/nspath"
)

// FileName is the name of the config file.
const FileName = "convlint.yaml"

// FileNameAlt is the alternate name of the config file.
const FileNameAlt = "convlint.yml"

const envPrefix = "CONVLINT_"

// Namespace configures the namespace rule.
type Namespace struct {
	Root  string `koanf:"root"`
	Depth int    `koanf:"depth"`
}

// File is the full convlint.yaml shape.
type File struct {
	Namespace Namespace         `koanf:"namespace"`
	Severity  map[string]string `koanf:"severity"`
	Disabled  []string          `koanf:"disabled"`
}

// NamespaceConfig converts the file's namespace section into the engine
// configuration. Clamping and trimming happen in nspath.Config.Normalize.
func (f *File) NamespaceConfig() nspath.Config {
	return nspath.Config{
		Root:  f.Namespace.Root,
		Depth: f.Namespace.Depth,
	}
}

// SeverityOverrides parses the severity section into rule overrides. Unknown
// rule codes are skipped. An unparsable severity value is reported as an
// error since it is an explicit, malformed user intent, but the valid
// entries are still returned: one bad value must not discard the rest.
func (f *File) SeverityOverrides() (map[convrules.Rule]convrules.Severity, error) {
	out := make(map[convrules.Rule]convrules.Severity, len(f.Severity))

	var errs []error
	for code, raw := range f.Severity {
		rule, ok := convrules.ByCode(code)
		if !ok {
			continue
		}

		var sev convrules.Severity
		if err := sev.UnmarshalText([]byte(raw)); err != nil {
			errs = append(errs, fmt.Errorf("severity for %s: %w", code, err))
			continue
		}

		out[rule] = sev
	}

	return out, errors.Join(errs...)
}

// LoadFromDir loads a File from the given directory. It looks for
// convlint.yaml or convlint.yml there and applies CONVLINT_* environment
// overrides on top. Returns nil, nil if no config file is found (not an
// error condition).
func LoadFromDir(dir string) (*File, error) {
	configPath := findConfigFile(dir)
	if configPath == "" {
		return nil, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load %s: %w", configPath, err)
	}

	// Environment overrides: CONVLINT_NAMESPACE_ROOT → namespace.root.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}

	var cfg File
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// findConfigFile finds the config file in the given directory. Returns empty
// string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, FileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

// FindConfigRoot walks up from the given directory to find a directory
// containing convlint.yaml or convlint.yml. Returns empty string if not found.
func FindConfigRoot(startDir string) string {
	dir := startDir
	for {
		if findConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

var projectRoots sync.Map // dir → root ("" when none)

// FindProjectRoot walks up from the given directory to the nearest directory
// containing a go.mod, the project root the namespace rule measures depth
// from. Lookups are cached so the filesystem walk happens once per root,
// before concurrent fan-out begins. Returns empty string if not found, which
// degrades namespace checking to root-only comparison.
func FindProjectRoot(startDir string) string {
	if v, ok := projectRoots.Load(startDir); ok {
		return v.(string)
	}

	root := ""
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			root = dir
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	projectRoots.Store(startDir, root)
	return root
}
