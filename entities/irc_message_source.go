package entities

import "regexp"

var sourceSeparators = regexp.MustCompile(`!|@`)

type IrcMessageSource struct {
	Nickname string `json:"nickname,omitempty"`
	Username string `json:"username,omitempty"`
	Host     string `json:"host"`
}

// Source splits the prefix into its nick, user and host parts. A prefix with
// no separators is a server name and is returned as Host.
func (m *IrcMessage) Source() *IrcMessageSource {
	if !m.HasPrefix {
		return nil
	}
	source := &IrcMessageSource{}
	prefixSplit := sourceSeparators.Split(m.Prefix, 3)
	switch len(prefixSplit) {
	case 1:
		source.Host = prefixSplit[0]
	case 2:
		source.Nickname = prefixSplit[0]
		source.Host = prefixSplit[1]
	default:
		source.Nickname = prefixSplit[0]
		source.Username = prefixSplit[1]
		source.Host = prefixSplit[2]
	}
	return source
}
