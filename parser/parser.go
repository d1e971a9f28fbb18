// Package parser decodes single IRC protocol lines, including IRCv3
// message-tags, into entities.IrcMessage values.
//
// The decoder never copies: tags, prefix, command and params are substrings
// of the line passed in. Tag values are left escaped.
package parser

import (
	"strings"

	"github.com/ynotnauk/go-irc/entities"
	"github.com/ynotnauk/go-irc/interfaces"
)

var _ interfaces.LineParser = (*Parser)(nil)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(line string) (*entities.IrcMessage, error) {
	return Parse(line)
}

// Parse decodes one line with its terminator already removed. A line must
// open with a tag block or a prefix; the sections always come in the order
// tags, prefix, command, params.
func Parse(line string) (*entities.IrcMessage, error) {
	message := &entities.IrcMessage{
		Raw: line,
	}
	// First token is either the tag block or the prefix
	rawToken, rest := nextToken(line)
	token, err := classifyToken(rawToken, true)
	if err != nil {
		return nil, err
	}
	switch token.kind {
	case tokenTags:
		message.Tags = token.value
		message.HasTags = true
	case tokenPrefix:
		message.Prefix = token.value
		message.HasPrefix = true
	}
	if rest == "" {
		return nil, ErrUnexpectedEndOfMessage
	}
	// Second token is the prefix following tags, or the command
	rawToken, rest = nextToken(rest)
	token, err = classifyToken(rawToken, false)
	if err != nil {
		return nil, err
	}
	switch token.kind {
	case tokenPrefix:
		message.Prefix = token.value
		message.HasPrefix = true
	case tokenCommand:
		message.Command = token.value
	}
	// After tags and prefix the next token can only be the command
	if message.Command == "" {
		if rest == "" {
			return nil, ErrUnexpectedEndOfMessage
		}
		rawToken, rest = nextToken(rest)
		if rawToken == "" {
			return nil, ErrMissingToken
		}
		message.Command = rawToken
	}
	for rest != "" {
		// Spaces after the last middle parameter end the line
		if isBlank(rest) {
			break
		}
		param, remainder, err := consumeParam(rest)
		if err != nil {
			return nil, err
		}
		message.Params = append(message.Params, param.value)
		if param.kind == paramTrailing {
			message.Trailing = true
			break
		}
		rest = remainder
	}
	return message, nil
}

func isBlank(input string) bool {
	return strings.TrimLeft(input, " ") == ""
}
