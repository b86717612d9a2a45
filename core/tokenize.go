package core

import "strings"

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\t'
}

// Tokenize splits a command line into whitespace delimited tokens.
// Consecutive delimiters collapse so no token is ever empty. At most max-1
// tokens are kept, the excess is silently dropped; the reserved slot is an
// artifact of the exec argv terminator and carries no data here.
func Tokenize(line string, max int) []string {
	tokens := strings.FieldsFunc(line, isDelimiter)
	if len(tokens) > max-1 {
		tokens = tokens[:max-1]
	}
	return tokens
}
