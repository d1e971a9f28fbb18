package entities

import "strings"

// TagMap splits the tag block into keys and values. Values are returned
// exactly as they appear on the wire, escape sequences included.
func (m *IrcMessage) TagMap() map[string]string {
	tags := make(map[string]string)
	if !m.HasTags {
		return tags
	}
	for _, rawTag := range strings.Split(m.Tags, ";") {
		if rawTag == "" {
			continue
		}
		key, value, _ := strings.Cut(rawTag, "=")
		tags[key] = value
	}
	return tags
}
