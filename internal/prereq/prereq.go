// Package prereq detects the external tools the deploy flow depends on.
// git is required: every provider here deploys from a git remote. docker is
// only advisory, a missing daemon never blocks writing a config file.
package prereq

import (
	"errors"
	"os/exec"

	"nenodeploy/internal/logger"
)

var ErrGitNotInstalled = errors.New("git not installed")

var plog = logger.PackageLogger("🔎 PREREQ")

// Status reports which prerequisite tools were found on PATH and where.
type Status struct {
	GitPath    string
	DockerPath string
}

func (s Status) GitFound() bool    { return s.GitPath != "" }
func (s Status) DockerFound() bool { return s.DockerPath != "" }

// Check probes PATH for git and docker. The returned error is non-nil only
// when git is missing; docker absence is visible through the Status alone.
func Check() (Status, error) {
	var st Status

	gitPath, err := exec.LookPath("git")
	if err != nil {
		plog.Debug("git not found in PATH: %v", err)
		return st, ErrGitNotInstalled
	}
	st.GitPath = gitPath
	plog.Debug("git found at: %s", gitPath)

	dockerPath, err := exec.LookPath("docker")
	if err != nil {
		plog.Debug("docker not found in PATH: %v", err)
		return st, nil
	}
	st.DockerPath = dockerPath
	plog.Debug("docker found at: %s", dockerPath)

	return st, nil
}
