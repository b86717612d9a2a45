package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"mshell.dev/msh/core/config"
)

// ErrorMessage is the single diagnostic printed to stderr for every
// recoverable failure. No failure-specific detail is surfaced to the user.
const ErrorMessage = "An error has occurred"

// Shell drives the command pipeline: line acquisition, tokenization,
// builtin dispatch, executable resolution, redirection and process launch.
// Execution is strictly sequential, one command and at most one child at a
// time.
type Shell struct {
	cfg      *config.Configuration
	src      LineSource
	fs       afero.Fs
	sys      System
	resolver *Resolver
	launcher Launcher
	log      *log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// workdir is the explicit process-wide working directory, mutated
	// only by the cd builtin.
	workdir string
}

// Options wires a Shell's collaborators. All fields are required.
type Options struct {
	Config   *config.Configuration
	Source   LineSource
	Fs       afero.Fs
	Sys      System
	Launcher Launcher
	Logger   *log.Logger
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

func NewShell(opts Options) (*Shell, error) {
	wd, err := opts.Sys.Getwd()
	if err != nil {
		return nil, err
	}

	return &Shell{
		cfg:      opts.Config,
		src:      opts.Source,
		fs:       opts.Fs,
		sys:      opts.Sys,
		resolver: NewResolver(opts.Fs, opts.Config.SearchPath),
		launcher: opts.Launcher,
		log:      opts.Logger,
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		workdir:  wd,
	}, nil
}

// Run processes commands until the input is exhausted or exit/quit.
// Recoverable failures abandon only the current command, the loop always
// continues to the next line.
func (s *Shell) Run() error {
	for {
		line, ok := s.src.NextLine()
		if !ok {
			return nil
		}
		if quit := s.runLine(line); quit {
			return nil
		}
	}
}

// runLine handles one raw line, reporting true when the shell should
// terminate. All per-command state is local to this call.
func (s *Shell) runLine(line string) bool {
	if max := s.cfg.MaxLineBytes; len(line) > max {
		s.log.Debug("truncating long line", "len", len(line), "max", max)
		line = line[:max]
	}
	if strings.TrimSpace(line) == "" {
		return false
	}

	tokens := Tokenize(line, s.cfg.MaxTokens)
	if len(tokens) == 0 {
		return false
	}

	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		return builtin.Main(s, tokens)
	}

	s.runExternal(tokens)
	return false
}

// runExternal resolves and launches one external command, applying a
// trailing redirection clause if present.
func (s *Shell) runExternal(tokens []string) {
	path, ok := s.resolver.Resolve(s.workdir, tokens[0])
	if !ok {
		s.log.Debug("command not found", "name", tokens[0])
		s.reportError()
		return
	}

	argv, target, err := ParseRedirect(tokens)
	if err != nil {
		s.log.Debug("bad redirection", "tokens", tokens)
		s.reportError()
		return
	}

	stdout, stderr := s.stdout, s.stderr
	if target != "" {
		file, err := OpenRedirect(s.fs, s.workdir, target)
		if err != nil {
			s.log.Debug("redirect open failed", "target", target, "error", err)
			s.reportError()
			return
		}
		defer file.Close()
		stdout, stderr = file, file
	}

	status, err := s.launcher.Launch(LaunchSpec{
		Path:   path,
		Argv:   argv,
		Dir:    s.workdir,
		Stdin:  s.stdin,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		s.log.Debug("spawn failed", "path", path, "error", err)
		s.reportError()
		return
	}

	// The status is collected but never acted on.
	s.log.Debug("child reaped", "path", path, "status", status)
}

func (s *Shell) reportError() {
	fmt.Fprintln(s.stderr, ErrorMessage)
}
