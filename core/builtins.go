package core

// AllBuiltins holds the commands the shell interprets itself, keyed by
// their first token. Matching is case-sensitive. Builtins never spawn a
// child and never accept redirection.
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	// Main runs the builtin. It reports true when the shell should
	// terminate.
	Main(s *Shell, args []string) (quit bool)
}

type BuiltinFunc func(s *Shell, args []string) bool

func (f BuiltinFunc) Main(s *Shell, args []string) bool {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Exit terminates the shell with success status. Any argument is an arity
// error: the generic diagnostic is printed and the shell keeps running.
func Exit(s *Shell, args []string) bool {
	if len(args) != 1 {
		s.reportError()
		return false
	}
	return true
}

// Cd changes the process-wide working directory. Requires exactly one
// directory argument; wrong arity and failed changes both report the
// generic diagnostic and leave the working directory untouched.
func Cd(s *Shell, args []string) bool {
	if len(args) != 2 {
		s.reportError()
		return false
	}

	if err := s.sys.Chdir(args[1]); err != nil {
		s.log.Debug("chdir failed", "dir", args[1], "error", err)
		s.reportError()
		return false
	}

	// Re-read the canonical directory so relative resolution and spawned
	// children observe the same state. A failure here leaves the tracked
	// directory stale against the real one, which must not pass silently.
	wd, err := s.sys.Getwd()
	if err != nil {
		s.log.Warn("getwd failed after chdir, tracked directory is stale",
			"dir", args[1], "error", err)
		return false
	}
	s.workdir = wd
	return false
}

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["quit"] = BuiltinFunc(Exit)
	AllBuiltins["cd"] = BuiltinFunc(Cd)
}
