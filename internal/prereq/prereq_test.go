package prereq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool drops an executable stub named tool into dir so exec.LookPath
// can find it.
func fakeTool(t *testing.T, dir, tool string) {
	t.Helper()
	path := filepath.Join(dir, tool)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755))
}

func TestCheck_GitAndDockerFound(t *testing.T) {
	dir := t.TempDir()
	fakeTool(t, dir, "git")
	fakeTool(t, dir, "docker")
	t.Setenv("PATH", dir)

	status, err := Check()
	require.NoError(t, err)
	assert.True(t, status.GitFound())
	assert.True(t, status.DockerFound())
	assert.Equal(t, filepath.Join(dir, "git"), status.GitPath)
	assert.Equal(t, filepath.Join(dir, "docker"), status.DockerPath)
}

func TestCheck_DockerMissingIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	fakeTool(t, dir, "git")
	t.Setenv("PATH", dir)

	status, err := Check()
	require.NoError(t, err)
	assert.True(t, status.GitFound())
	assert.False(t, status.DockerFound())
}

func TestCheck_GitMissingIsFatal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PATH", dir)

	_, err := Check()
	assert.ErrorIs(t, err, ErrGitNotInstalled)
}

func TestCheck_DockerAloneDoesNotSatisfyGit(t *testing.T) {
	dir := t.TempDir()
	fakeTool(t, dir, "docker")
	t.Setenv("PATH", dir)

	_, err := Check()
	assert.ErrorIs(t, err, ErrGitNotInstalled)
}
