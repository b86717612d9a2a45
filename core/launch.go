package core

import (
	"errors"
	"io"
	"os/exec"
)

// LaunchSpec describes one child process: the resolved executable, the
// argument vector with the command token at position zero, the working
// directory inherited at spawn time, and the stdio streams. Stdout and
// Stderr are either the shell's own streams or an open redirection target.
type LaunchSpec struct {
	Path   string
	Argv   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launcher spawns a single child and blocks until it has been reaped.
// A non-nil error means nothing ran (spawn or program load failed); a
// child that ran and exited non-zero is not an error, its status is only
// reported back.
type Launcher interface {
	Launch(spec LaunchSpec) (status int, err error)
}

// OSLauncher runs children as real host processes. Strictly one child
// exists at a time: Launch does not return until the child is gone.
type OSLauncher struct{}

var _ Launcher = OSLauncher{}

func (OSLauncher) Launch(spec LaunchSpec) (int, error) {
	cmd := &exec.Cmd{
		Path:   spec.Path,
		Args:   spec.Argv,
		Dir:    spec.Dir,
		Stdin:  spec.Stdin,
		Stdout: spec.Stdout,
		Stderr: spec.Stderr,
	}

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}
