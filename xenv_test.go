package xenv_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sxwebdev/xenv"
	"github.com/sxwebdev/xenv/sources"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"
)

// lookup returns an environment reader backed by env.
func lookup(env map[string]string) sources.LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestValidateMissingVariables(t *testing.T) {
	r := xenv.NewRegistry()
	r.Register(xenv.Required("DATABASE_URL"), xenv.Default("PORT", "8080"))

	err := r.Validate(nil, "env", xenv.WithLookup(lookup(nil)))

	var missing *xenv.MissingVariablesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"DATABASE_URL"}, missing.Names)
	assert.ErrorIs(t, err, xenv.ErrMissingVariables)

	values, err := r.DumpAllVars(nil, "env", xenv.WithLookup(lookup(nil)))
	require.NoError(t, err)

	expect := xenv.Values{
		"DATABASE_URL": {Name: "DATABASE_URL", Source: xenv.SourceUnresolved},
		"PORT":         {Name: "PORT", Value: "8080", Source: xenv.SourceDefault},
	}
	if diff := cmp.Diff(expect, values); diff != "" {
		t.Error(diff)
	}

	assert.Equal(t, "<unresolved>", values["DATABASE_URL"].String())
}

func TestValidateReportsEveryMissingName(t *testing.T) {
	r := xenv.NewRegistry()
	r.Register(xenv.Required("PORT"), xenv.Required("DATABASE_URL"), xenv.Required("PORT"))

	err := r.Validate(nil, "env", xenv.WithLookup(lookup(nil)))

	var missing *xenv.MissingVariablesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"DATABASE_URL", "PORT"}, missing.Names)
	assert.EqualError(t, err, "missing required environment variables: DATABASE_URL, PORT")
}

func TestValidateFileLayers(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.toml", "[env]\nPORT = \"3000\"\n")
	override := writeFile(t, dir, "override.toml", "[env]\nPORT = \"4000\"\n")

	r := xenv.NewRegistry()
	r.Register(xenv.Required("PORT"))

	values, err := r.Load([]string{base, override}, "env",
		xenv.WithLookup(lookup(nil)),
		xenv.WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	assert.Equal(t, xenv.Resolution{Name: "PORT", Value: "4000", Source: xenv.SourceFile}, values["PORT"])

	values, err = r.Load([]string{base, override}, "env", xenv.WithLookup(lookup(map[string]string{"PORT": "5000"})))
	require.NoError(t, err)
	assert.Equal(t, xenv.Resolution{Name: "PORT", Value: "5000", Source: xenv.SourceEnv}, values["PORT"])
}

func TestValidateEmptyEnvironmentValueWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.toml", "[env]\nTOKEN = \"from-file\"\n")

	r := xenv.NewRegistry()
	r.Register(xenv.Default("TOKEN", "from-default"))

	values, err := r.Load([]string{path}, "env", xenv.WithLookup(lookup(map[string]string{"TOKEN": ""})))
	require.NoError(t, err)
	assert.Equal(t, xenv.Resolution{Name: "TOKEN", Value: "", Source: xenv.SourceEnv}, values["TOKEN"])
}

func TestValidateProcessEnvironment(t *testing.T) {
	t.Setenv("XENV_TEST_PRESENT_VAR", "present_value")

	r := xenv.NewRegistry()
	r.Register(xenv.Required("XENV_TEST_PRESENT_VAR"))

	values, err := r.Load(nil, "env")
	require.NoError(t, err)
	assert.Equal(t, "present_value", values.Get("XENV_TEST_PRESENT_VAR"))
}

func TestValidateEnvPrefix(t *testing.T) {
	r := xenv.NewRegistry()
	r.Register(xenv.Required("PORT"))

	values, err := r.Load(nil, "env",
		xenv.WithEnvPrefix("app"),
		xenv.WithLookup(lookup(map[string]string{"APP_PORT": "7000", "PORT": "1"})),
	)
	require.NoError(t, err)
	assert.Equal(t, "7000", values.Get("PORT"))
}

func TestValidateMissingFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	present := writeFile(t, dir, "settings.conf", "[env]\nTEST_ENV_VAR = \"test_value\"\n")

	r := xenv.NewRegistry()
	r.Register(xenv.Required("TEST_ENV_VAR"))

	paths := []string{filepath.Join(dir, "does_not_exist.conf"), present}

	values, err := r.Load(paths, "env", xenv.WithLookup(lookup(nil)))
	require.NoError(t, err)
	assert.Equal(t, "test_value", values.Get("TEST_ENV_VAR"))

	err = r.Validate(paths, "env", xenv.WithLookup(lookup(nil)), xenv.WithStrictFiles())

	var loadErr *xenv.ConfigLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, paths[0], loadErr.Path)
}

func TestValidateMalformedFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.toml", "[env\nPORT = ")

	r := xenv.NewRegistry()
	r.Register(xenv.Required("PORT"))

	values, err := r.Load([]string{bad}, "env", xenv.WithLookup(lookup(map[string]string{"PORT": "1"})))
	assert.Nil(t, values)

	var loadErr *xenv.ConfigLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, bad, loadErr.Path)
	assert.False(t, errors.Is(err, xenv.ErrMissingVariables))

	_, err = r.DumpAllVars([]string{bad}, "env")
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml", "env:\n  PORT: 3000\n  EXTRA: x\n  TYPO_HOST: y\n")

	r := xenv.NewRegistry()
	r.Register(xenv.Required("PORT"))

	unknown, err := r.UnknownKeys([]string{path}, "env")
	require.NoError(t, err)
	assert.Equal(t, []string{"EXTRA", "TYPO_HOST"}, unknown)

	require.NoError(t, r.Validate([]string{path}, "env", xenv.WithLookup(lookup(nil))))

	err = r.Validate([]string{path}, "env", xenv.WithLookup(lookup(nil)), xenv.WithDisallowUnknownKeys())

	var unknownErr *xenv.UnknownKeysError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"EXTRA", "TYPO_HOST"}, unknownErr.Keys)
	assert.ErrorIs(t, err, xenv.ErrUnknownKeys)
}

func TestValidateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.json", `{"env": {"HOST": "db"}}`)

	r := xenv.NewRegistry()
	r.Register(xenv.Required("HOST"), xenv.Required("USER"), xenv.Required("PASSWORD"))

	opts := []xenv.Option{xenv.WithLookup(lookup(map[string]string{"USER": "admin"}))}

	first := r.Validate([]string{path}, "env", opts...)
	second := r.Validate([]string{path}, "env", opts...)

	require.Error(t, first)
	assert.Equal(t, first.Error(), second.Error())
}

func TestGlobalRegistry(t *testing.T) {
	xenv.Global().Reset()
	t.Cleanup(xenv.Global().Reset)

	xenv.Register(xenv.Required("XENV_GLOBAL_B"), xenv.Default("XENV_GLOBAL_A", "a"))

	assert.Equal(t, []string{"XENV_GLOBAL_A", "XENV_GLOBAL_B"}, xenv.ListAllVars())

	err := xenv.Validate(nil, "env", xenv.WithLookup(lookup(nil)))

	var missing *xenv.MissingVariablesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"XENV_GLOBAL_B"}, missing.Names)

	values, err := xenv.Load(nil, "env", xenv.WithLookup(lookup(map[string]string{"XENV_GLOBAL_B": "b"})))
	require.NoError(t, err)
	assert.Equal(t, "b", values.Get("XENV_GLOBAL_B"))

	dump, err := xenv.DumpAllVars(nil, "env", xenv.WithLookup(lookup(nil)))
	require.NoError(t, err)
	assert.Equal(t, []string{"XENV_GLOBAL_B"}, dump.Unresolved())
}

func TestValidateCompletenessProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[A-Z][A-Z0-9_]{0,11}`), 1, 20, rapid.ID[string]).Draw(t, "names")
		present := rapid.SliceOfN(rapid.Bool(), len(names), len(names)).Draw(t, "present")

		env := make(map[string]string)
		r := xenv.NewRegistry()

		var expect []string
		for i, name := range names {
			r.Register(xenv.Required(name))
			if present[i] {
				env[name] = fmt.Sprintf("value-%d", i)
			} else {
				expect = append(expect, name)
			}
		}
		slices.Sort(expect)

		err := r.Validate(nil, "env", xenv.WithLookup(lookup(env)))
		if len(expect) == 0 {
			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			return
		}

		var missing *xenv.MissingVariablesError
		if !errors.As(err, &missing) {
			t.Fatalf("expected *MissingVariablesError, got %v", err)
		}

		if !slices.Equal(expect, missing.Names) {
			t.Fatalf("expected %v, got %v", expect, missing.Names)
		}
	})
}
