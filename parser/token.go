package parser

type tokenKind int

const (
	tokenTags tokenKind = iota + 1
	tokenPrefix
	tokenCommand
)

func (k tokenKind) String() string {
	switch k {
	case tokenTags:
		return "tags"
	case tokenPrefix:
		return "prefix"
	case tokenCommand:
		return "command"
	default:
		return "unknown"
	}
}

// leadToken is one of the leading sections of a line with its sigil removed.
type leadToken struct {
	kind  tokenKind
	value string
}

// classifyToken identifies a leading token by its sigil. Tags are only legal
// as the first token and the first token is never the command.
func classifyToken(token string, first bool) (leadToken, error) {
	if token == "" {
		return leadToken{}, ErrMissingToken
	}
	switch token[0] {
	case '@':
		if !first {
			return leadToken{}, ErrMisplacedTags
		}
		return leadToken{kind: tokenTags, value: token[1:]}, nil
	case ':':
		return leadToken{kind: tokenPrefix, value: token[1:]}, nil
	default:
		if first {
			return leadToken{}, ErrExpectedTagsOrPrefix
		}
		return leadToken{kind: tokenCommand, value: token}, nil
	}
}
