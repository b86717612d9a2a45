package core

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrBadRedirect flags a duplicated or malformed output redirection clause.
var ErrBadRedirect = errors.New("malformed redirection")

// ParseRedirect scans the token vector for a trailing "> target" clause and
// splits it from the argument vector. Exactly one ">" followed by exactly
// one token is legal; a second ">", a missing filename, extra tokens after
// the filename, or a clause with no command in front of it are all errors
// and the command must not run. When there is no ">" at all the tokens pass
// through untouched with an empty target.
func ParseRedirect(tokens []string) (argv []string, target string, err error) {
	op := -1
	for i, tok := range tokens {
		if tok != ">" {
			continue
		}
		if op >= 0 {
			return nil, "", ErrBadRedirect
		}
		op = i
	}

	if op < 0 {
		return tokens, "", nil
	}
	if op == 0 || op != len(tokens)-2 {
		return nil, "", ErrBadRedirect
	}
	return tokens[:op], tokens[op+1], nil
}

// OpenRedirect opens the redirection target for the child, creating it if
// needed and truncating any existing content. Owner read/write only.
// Relative targets resolve against the shell's working directory.
func OpenRedirect(fsys afero.Fs, wd, target string) (afero.File, error) {
	if !filepath.IsAbs(target) {
		target = filepath.Join(wd, target)
	}
	return fsys.OpenFile(target, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
}
