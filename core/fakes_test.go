package core

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"mshell.dev/msh/core/config"
)

// fakeSystem tracks the working directory in memory. Chdir succeeds only
// for directories registered up front.
type fakeSystem struct {
	wd    string
	dirs  map[string]bool
	wdErr error // when set, Getwd fails
}

func newFakeSystem(wd string, dirs ...string) *fakeSystem {
	m := map[string]bool{wd: true}
	for _, d := range dirs {
		m[d] = true
	}
	return &fakeSystem{wd: wd, dirs: m}
}

func (f *fakeSystem) Getwd() (string, error) {
	if f.wdErr != nil {
		return "", f.wdErr
	}
	return f.wd, nil
}

func (f *fakeSystem) Chdir(dir string) error {
	if !f.dirs[dir] {
		return fs.ErrNotExist
	}
	f.wd = dir
	return nil
}

// fakeLauncher records every spawn and emulates a child that reports its
// own invocation on stdout.
type fakeLauncher struct {
	calls  []LaunchSpec
	status int
	err    error
}

func (f *fakeLauncher) Launch(spec LaunchSpec) (int, error) {
	f.calls = append(f.calls, spec)
	if f.err != nil {
		return 0, f.err
	}
	fmt.Fprintf(spec.Stdout, "ran %s argv=%v dir=%s\n", spec.Path, spec.Argv, spec.Dir)
	return f.status, nil
}

type testShell struct {
	shell    *Shell
	fs       afero.Fs
	sys      *fakeSystem
	launcher *fakeLauncher
	out      *bytes.Buffer // combined stdout and stderr
}

func newTestShell(t *testing.T, src LineSource, mutate func(*Options)) *testShell {
	t.Helper()

	ts := &testShell{
		fs:       afero.NewMemMapFs(),
		sys:      newFakeSystem("/home/user"),
		launcher: &fakeLauncher{},
		out:      &bytes.Buffer{},
	}

	opts := Options{
		Config:   config.Default(),
		Source:   src,
		Fs:       ts.fs,
		Sys:      ts.sys,
		Launcher: ts.launcher,
		Logger:   log.New(io.Discard),
		Stdin:    strings.NewReader(""),
		Stdout:   ts.out,
		Stderr:   ts.out,
	}
	if mutate != nil {
		mutate(&opts)
	}

	shell, err := NewShell(opts)
	require.NoError(t, err)
	ts.shell = shell
	return ts
}

// writeExecutable installs an executable file in the test filesystem.
func writeExecutable(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte("#!/bin/true\n"), 0o755))
	require.NoError(t, fsys.Chmod(path, 0o755))
}
