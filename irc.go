// Package irc decodes IRC protocol lines. See the parser package for the
// grammar and the stream package for decoding a whole connection or file.
package irc

import (
	"github.com/ynotnauk/go-irc/entities"
	"github.com/ynotnauk/go-irc/parser"
)

// ParseLine decodes a single line with its CRLF terminator already removed.
// The returned message borrows from line.
func ParseLine(line string) (*entities.IrcMessage, error) {
	return parser.Parse(line)
}
