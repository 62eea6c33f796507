package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeService(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "serverless.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeService(t, `
service: my-app
custom:
  angular:
    project: app
    outputDirectory: out
    reloadHandler: true
    configFile: workspace.json
    buildSystem: angular
  webpack:
    outputWorkFolder: work
    outputBuildFolder: build
`)

	svc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-app", svc.Name)
	assert.Equal(t, filepath.Dir(path), svc.Path)

	cfg := svc.Angular()
	assert.Equal(t, "app", cfg.Project)
	assert.Equal(t, "out", cfg.OutputDirectory)
	assert.True(t, cfg.ReloadHandler)
	assert.Equal(t, "workspace.json", cfg.WorkspaceFile())
	assert.Equal(t, "angular", cfg.BuildSystem)

	webpack, ok := svc.Webpack()
	require.True(t, ok)
	assert.Equal(t, "work", webpack.WorkFolder())
	assert.Equal(t, "build", webpack.BuildFolder())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "serverless.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
}

func TestLoadParseFailure(t *testing.T) {
	path := writeService(t, "service: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestDefaults(t *testing.T) {
	path := writeService(t, "service: bare\n")

	svc, err := Load(path)
	require.NoError(t, err)

	cfg := svc.Angular()
	assert.Empty(t, cfg.Project)
	assert.Equal(t, DefaultConfigFile, cfg.WorkspaceFile())
	assert.Equal(t, DefaultOutputFolder, cfg.OutputFolder())

	_, ok := svc.Webpack()
	assert.False(t, ok, "webpack block should be reported absent")

	webpack := WebpackConfig{}
	assert.Equal(t, ".webpack", webpack.WorkFolder())
	assert.Equal(t, "service", webpack.BuildFolder())
}

func TestNodeModules(t *testing.T) {
	path := writeService(t, "service: app\n")

	svc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(svc.Path, "node_modules"), svc.NodeModules())
}

func TestUseDotenv(t *testing.T) {
	path := writeService(t, "service: app\nuseDotenv: true\n")
	dir := filepath.Dir(path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SA_TEST_DOTENV=loaded\n"), 0644))
	t.Setenv("SA_TEST_DOTENV", "")
	os.Unsetenv("SA_TEST_DOTENV")

	_, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "loaded", os.Getenv("SA_TEST_DOTENV"))
}

func TestUseDotenvMissingFile(t *testing.T) {
	path := writeService(t, "service: app\nuseDotenv: true\n")

	_, err := Load(path)
	assert.NoError(t, err, "a missing .env file is not an error")
}

func TestErrorIdentity(t *testing.T) {
	assert.False(t, errors.Is(ErrRead, ErrParse))
}
