package parser

import "github.com/pkg/errors"

var (
	ErrMissingToken           error = errors.New("expected a token, got nothing")
	ErrExpectedTagsOrPrefix   error = errors.New("expected message-tags or prefix")
	ErrMisplacedTags          error = errors.New("message-tags are invalid here")
	ErrUnexpectedEndOfMessage error = errors.New("unexpected end of message")
	ErrMissingParameterData   error = errors.New("expected parameter data, got nothing")
)
