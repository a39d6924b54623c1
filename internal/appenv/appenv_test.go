package appenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NENO_APP_NAME", "")
	t.Setenv("NENO_REGION", "")

	app := Load(t.TempDir())
	assert.Equal(t, DefaultAppName, app.Name)
	assert.Equal(t, DefaultRegion, app.Region)
}

func TestLoad_DotenvFile(t *testing.T) {
	t.Setenv("NENO_APP_NAME", "")
	t.Setenv("NENO_REGION", "")

	dir := t.TempDir()
	env := "NENO_APP_NAME=minha-ia\nNENO_REGION=iad\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644))

	app := Load(dir)
	assert.Equal(t, "minha-ia", app.Name)
	assert.Equal(t, "iad", app.Region)
}

func TestLoad_ProcessEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NENO_APP_NAME=do-arquivo\n"), 0644))

	t.Setenv("NENO_APP_NAME", "do-ambiente")
	t.Setenv("NENO_REGION", "")

	app := Load(dir)
	assert.Equal(t, "do-ambiente", app.Name)
	assert.Equal(t, DefaultRegion, app.Region)
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	t.Setenv("NENO_APP_NAME", "")
	t.Setenv("NENO_REGION", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("not a dotenv line"), 0644))

	app := Load(dir)
	assert.Equal(t, DefaultAppName, app.Name)
}
