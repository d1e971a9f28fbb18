package parser

import "strings"

// nextToken skips leading spaces and returns the run of non-space bytes that
// follows. rest begins at the space that ended the token so that the next call
// can skip it the same way. Both results are empty when only spaces remain,
// and rest is empty when the token runs to the end of input.
func nextToken(input string) (token string, rest string) {
	start := 0
	for start < len(input) && input[start] == ' ' {
		start++
	}
	if start == len(input) {
		return "", ""
	}
	end := strings.IndexByte(input[start:], ' ')
	if end == -1 {
		return input[start:], ""
	}
	end += start
	return input[start:end], input[end:]
}
