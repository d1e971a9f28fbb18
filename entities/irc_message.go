package entities

// IrcMessage is a single decoded protocol line. Every string field is a
// substring of Raw, so the message shares memory with the line it came from.
type IrcMessage struct {
	Raw     string   `json:"raw"`
	Tags    string   `json:"tags,omitempty"`
	Prefix  string   `json:"prefix,omitempty"`
	Command string   `json:"command"`
	Params  []string `json:"params"`
	// HasTags and HasPrefix tell an absent section apart from an empty one
	// such as "@ :nick CMD".
	HasTags   bool `json:"hasTags"`
	HasPrefix bool `json:"hasPrefix"`
	// Trailing is set when the last parameter was introduced by a colon.
	Trailing bool `json:"trailing"`
}

// Param returns the parameter at index i.
func (m *IrcMessage) Param(i int) (string, bool) {
	if i < 0 || i >= len(m.Params) {
		return "", false
	}
	return m.Params[i], true
}
