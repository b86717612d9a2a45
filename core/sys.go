package core

import "os"

// System is the slice of host OS state the shell mutates: the process-wide
// working directory. It is set once at startup, changed only by the cd
// builtin, and read by path resolution and process creation. Injectable so
// tests never touch the real process state.
type System interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

type osSystem struct{}

func (osSystem) Getwd() (string, error) { return os.Getwd() }
func (osSystem) Chdir(dir string) error { return os.Chdir(dir) }

// NewOSSystem returns a System backed by the real process state.
func NewOSSystem() System {
	return osSystem{}
}
