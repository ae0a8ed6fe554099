package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convlint/convlint/internal/convrules"
)

const sample = `namespace:
  root: acme.app
  depth: 2
severity:
  CNV001: error
disabled:
  - CNV002
`

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sample)

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "acme.app", cfg.Namespace.Root)
	assert.Equal(t, 2, cfg.Namespace.Depth)
	assert.Equal(t, []string{"CNV002"}, cfg.Disabled)

	ns := cfg.NamespaceConfig()
	assert.Equal(t, "acme.app", ns.Root)
	assert.Equal(t, 2, ns.Depth)

	overrides, err := cfg.SeverityOverrides()
	require.NoError(t, err)
	assert.Equal(t, convrules.SeverityError, overrides[convrules.CNV001NamespaceMismatch])
}

func TestLoadFromDirAbsent(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFromDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sample)
	t.Setenv("CONVLINT_NAMESPACE_ROOT", "other.app")

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "other.app", cfg.Namespace.Root)
	assert.Equal(t, 2, cfg.Namespace.Depth)
}

func TestSeverityOverridesMalformed(t *testing.T) {
	cfg := &File{Severity: map[string]string{
		"CNV001": "loud",
		"CNV100": "error",
	}}

	overrides, err := cfg.SeverityOverrides()
	assert.Error(t, err)

	// The malformed entry is reported, the valid one still applies.
	assert.Equal(t, convrules.SeverityError, overrides[convrules.CNV100MissingRequiredAttribute])
	assert.NotContains(t, overrides, convrules.CNV001NamespaceMismatch)
}

func TestSeverityOverridesUnknownRule(t *testing.T) {
	cfg := &File{Severity: map[string]string{"XYZ999": "error"}}

	overrides, err := cfg.SeverityOverrides()
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestFindConfigRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, sample)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, FindConfigRoot(nested))
	assert.Equal(t, "", FindConfigRoot(string(filepath.Separator)))
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/x\n"), 0o644))

	nested := filepath.Join(root, "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, FindProjectRoot(nested))

	// Second lookup hits the cache and must agree.
	assert.Equal(t, root, FindProjectRoot(nested))
}
