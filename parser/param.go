package parser

import "strings"

type paramKind int

const (
	paramMiddle paramKind = iota + 1
	paramTrailing
)

func (k paramKind) String() string {
	switch k {
	case paramMiddle:
		return "middle"
	case paramTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

type parsedParam struct {
	kind  paramKind
	value string
}

// consumeParam reads one parameter from the parameter section. A trailing
// parameter takes everything after its colon and leaves no remainder.
func consumeParam(input string) (parsedParam, string, error) {
	// The delimiter left over from the previous token comes first
	trimmed := strings.TrimLeft(input, " ")
	if trimmed == "" {
		return parsedParam{}, "", ErrMissingParameterData
	}
	if trimmed[0] == ':' {
		return parsedParam{kind: paramTrailing, value: trimmed[1:]}, "", nil
	}
	token, rest := nextToken(trimmed)
	return parsedParam{kind: paramMiddle, value: token}, rest, nil
}
