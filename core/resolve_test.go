package core

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSearchPath = []string{"/bin/", "/usr/bin/", "/usr/local/bin/", "./"}

func TestResolvePriorityOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeExecutable(t, fsys, "/bin/tool")
	writeExecutable(t, fsys, "/usr/bin/tool")
	writeExecutable(t, fsys, "/usr/local/bin/tool")

	r := NewResolver(fsys, testSearchPath)
	path, ok := r.Resolve("/home/user", "tool")
	require.True(t, ok)
	assert.Equal(t, "/bin/tool", path)
}

func TestResolveLaterDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeExecutable(t, fsys, "/usr/local/bin/tool")

	r := NewResolver(fsys, testSearchPath)
	path, ok := r.Resolve("/home/user", "tool")
	require.True(t, ok)
	assert.Equal(t, "/usr/local/bin/tool", path)
}

func TestResolveWorkingDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeExecutable(t, fsys, "/home/user/tool")

	r := NewResolver(fsys, testSearchPath)
	path, ok := r.Resolve("/home/user", "tool")
	require.True(t, ok)
	assert.Equal(t, "/home/user/tool", path)

	// A different working directory no longer sees it.
	_, ok = r.Resolve("/elsewhere", "tool")
	assert.False(t, ok)
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(afero.NewMemMapFs(), testSearchPath)
	_, ok := r.Resolve("/home/user", "missing")
	assert.False(t, ok)
}

func TestResolveRequiresExecutableBit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bin/data", []byte("not a program"), 0o644))
	require.NoError(t, fsys.Chmod("/bin/data", 0o644))

	r := NewResolver(fsys, testSearchPath)
	_, ok := r.Resolve("/home/user", "data")
	assert.False(t, ok)
}

func TestResolveSkipsDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/bin/tool", 0o755))

	r := NewResolver(fsys, testSearchPath)
	_, ok := r.Resolve("/home/user", "tool")
	assert.False(t, ok)
}

func TestResolveSkipsNonExecutableEarlierMatch(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bin/tool", []byte("plain file"), 0o644))
	require.NoError(t, fsys.Chmod("/bin/tool", 0o644))
	writeExecutable(t, fsys, "/usr/bin/tool")

	r := NewResolver(fsys, testSearchPath)
	path, ok := r.Resolve("/home/user", "tool")
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/tool", path)
}
