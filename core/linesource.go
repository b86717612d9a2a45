package core

import (
	"bufio"
	"io"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// LineSource yields raw command lines one at a time. ok is false once the
// input is exhausted; a read failure ends the stream the same way as
// end-of-input, there is no retry.
type LineSource interface {
	NextLine() (line string, ok bool)
	Close() error
}

var promptColor = color.New(color.FgGreen, color.Bold)

// PromptSource reads lines interactively, printing the prompt before each
// one.
type PromptSource struct {
	rl *readline.Instance
}

var _ LineSource = (*PromptSource)(nil)

func NewPromptSource(prompt string, stdin io.Reader, stdout, stderr io.Writer) (*PromptSource, error) {
	cfg := &readline.Config{
		Prompt: promptColor.Sprint(prompt),
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &PromptSource{rl: rl}, nil
}

func (p *PromptSource) NextLine() (string, bool) {
	return classifyReadline(p.rl.Readline())
}

// classifyReadline maps a readline result onto the LineSource contract:
// an interrupt behaves like an empty line so the loop re-prompts, and any
// other read failure ends the stream exactly like end-of-input.
func classifyReadline(line string, err error) (string, bool) {
	switch {
	case err == readline.ErrInterrupt:
		return "", true
	case err != nil:
		return "", false
	default:
		return line, true
	}
}

func (p *PromptSource) Close() error {
	return p.rl.Close()
}

// ScriptSource reads commands from a batch file. No prompt is printed.
type ScriptSource struct {
	file    afero.File
	scanner *bufio.Scanner
}

var _ LineSource = (*ScriptSource)(nil)

func NewScriptSource(fsys afero.Fs, path string) (*ScriptSource, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	return &ScriptSource{file: file, scanner: bufio.NewScanner(file)}, nil
}

func (s *ScriptSource) NextLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *ScriptSource) Close() error {
	return s.file.Close()
}
