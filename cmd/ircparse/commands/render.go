package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ynotnauk/go-irc/config"
	"github.com/ynotnauk/go-irc/entities"
)

// renderer writes decoded messages to out. It is the message handler for
// both the decode and stream commands.
type renderer struct {
	out    io.Writer
	output config.Output
}

type jsonMessage struct {
	Line int `json:"line"`
	entities.IrcMessage
	TagMap map[string]string          `json:"tagMap,omitempty"`
	Source *entities.IrcMessageSource `json:"source,omitempty"`
}

func newRenderer(out io.Writer, output config.Output) *renderer {
	return &renderer{
		out:    out,
		output: output,
	}
}

func (r *renderer) HandleMessage(lineNumber int, message *entities.IrcMessage) error {
	if strings.ToLower(r.output.Format) == config.OutputJSON {
		return r.writeJSON(lineNumber, message)
	}
	return r.writeText(lineNumber, message)
}

func (r *renderer) writeJSON(lineNumber int, message *entities.IrcMessage) error {
	view := &jsonMessage{
		Line:       lineNumber,
		IrcMessage: *message,
	}
	if view.Params == nil {
		view.Params = []string{}
	}
	if r.output.Tags && message.HasTags {
		view.TagMap = message.TagMap()
	}
	if r.output.Source {
		view.Source = message.Source()
	}
	return json.NewEncoder(r.out).Encode(view)
}

func (r *renderer) writeText(lineNumber int, message *entities.IrcMessage) error {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d\n", lineNumber)
	if message.HasTags {
		fmt.Fprintf(&b, "  tags     %s\n", message.Tags)
		if r.output.Tags {
			tags := message.TagMap()
			keys := make([]string, 0, len(tags))
			for key := range tags {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(&b, "    %s = %s\n", key, tags[key])
			}
		}
	}
	if message.HasPrefix {
		fmt.Fprintf(&b, "  prefix   %s\n", message.Prefix)
		if source := message.Source(); r.output.Source && source != nil {
			fmt.Fprintf(&b, "    nick = %s\n    user = %s\n    host = %s\n",
				source.Nickname, source.Username, source.Host)
		}
	}
	fmt.Fprintf(&b, "  command  %s\n", message.Command)
	for i, param := range message.Params {
		kind := "middle"
		if message.Trailing && i == len(message.Params)-1 {
			kind = "trailing"
		}
		fmt.Fprintf(&b, "  param    %-8s %q\n", kind, param)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}
