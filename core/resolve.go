package core

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Resolver maps a command name to an executable path by trying a fixed,
// ordered list of directory prefixes. The first match wins. The inherited
// PATH environment variable is never consulted.
type Resolver struct {
	fs         afero.Fs
	searchPath []string
}

func NewResolver(fsys afero.Fs, searchPath []string) *Resolver {
	return &Resolver{fs: fsys, searchPath: searchPath}
}

// findExecutable reports whether path names a file the invoking user can
// execute. Existence alone or read permission alone doesn't qualify.
func (r *Resolver) findExecutable(path string) error {
	d, err := r.fs.Stat(path)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// Resolve searches the directory prefixes in priority order for name.
// Relative prefixes are evaluated against wd, the shell's working
// directory. The boolean is false when no directory yields an executable.
func (r *Resolver) Resolve(wd, name string) (string, bool) {
	for _, dir := range r.searchPath {
		candidate := dir + name
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(wd, candidate)
		}
		if err := r.findExecutable(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
