package parser

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ynotnauk/go-irc/entities"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected *entities.IrcMessage
	}{
		{
			name: "prefix command and trailing",
			line: ":nick!user@host PRIVMSG #chan :hello world",
			expected: &entities.IrcMessage{
				Prefix:    "nick!user@host",
				HasPrefix: true,
				Command:   "PRIVMSG",
				Params:    []string{"#chan", "hello world"},
				Trailing:  true,
			},
		},
		{
			name: "tags prefix and middles",
			line: "@id=123 :nick COMMAND arg1 arg2",
			expected: &entities.IrcMessage{
				Tags:      "id=123",
				HasTags:   true,
				Prefix:    "nick",
				HasPrefix: true,
				Command:   "COMMAND",
				Params:    []string{"arg1", "arg2"},
			},
		},
		{
			name: "tags then command",
			line: "@time=2023-01-01T00:00:00.000Z PING :tmi.twitch.tv",
			expected: &entities.IrcMessage{
				Tags:     "time=2023-01-01T00:00:00.000Z",
				HasTags:  true,
				Command:  "PING",
				Params:   []string{"tmi.twitch.tv"},
				Trailing: true,
			},
		},
		{
			name: "numeric reply",
			line: ":irc.example.com 251 botnet_test :There are 185 users on 25 servers",
			expected: &entities.IrcMessage{
				Prefix:    "irc.example.com",
				HasPrefix: true,
				Command:   "251",
				Params:    []string{"botnet_test", "There are 185 users on 25 servers"},
				Trailing:  true,
			},
		},
		{
			name: "no params",
			line: ":tmi.twitch.tv RECONNECT",
			expected: &entities.IrcMessage{
				Prefix:    "tmi.twitch.tv",
				HasPrefix: true,
				Command:   "RECONNECT",
			},
		},
		{
			name: "trailing keeps embedded spaces",
			line: ":nick CMD :hello world foo",
			expected: &entities.IrcMessage{
				Prefix:    "nick",
				HasPrefix: true,
				Command:   "CMD",
				Params:    []string{"hello world foo"},
				Trailing:  true,
			},
		},
		{
			name: "trailing keeps colons and runs of spaces",
			line: ":nick CMD a :b  :c  ",
			expected: &entities.IrcMessage{
				Prefix:    "nick",
				HasPrefix: true,
				Command:   "CMD",
				Params:    []string{"a", "b  :c  "},
				Trailing:  true,
			},
		},
		{
			name: "empty trailing",
			line: ":nick CMD x :",
			expected: &entities.IrcMessage{
				Prefix:    "nick",
				HasPrefix: true,
				Command:   "CMD",
				Params:    []string{"x", ""},
				Trailing:  true,
			},
		},
		{
			name: "extra spaces between sections",
			line: "  @a=b   :nick   CMD   x    y   ",
			expected: &entities.IrcMessage{
				Tags:      "a=b",
				HasTags:   true,
				Prefix:    "nick",
				HasPrefix: true,
				Command:   "CMD",
				Params:    []string{"x", "y"},
			},
		},
		{
			name: "empty tags and prefix",
			line: "@ : CMD",
			expected: &entities.IrcMessage{
				HasTags:   true,
				HasPrefix: true,
				Command:   "CMD",
			},
		},
		{
			name: "second prefix replaces first",
			line: ":a :b CMD x",
			expected: &entities.IrcMessage{
				Prefix:    "b",
				HasPrefix: true,
				Command:   "CMD",
				Params:    []string{"x"},
			},
		},
		{
			name: "terminator is content",
			line: ":nick CMD x\r",
			expected: &entities.IrcMessage{
				Prefix:    "nick",
				HasPrefix: true,
				Command:   "CMD",
				Params:    []string{"x\r"},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			message, err := Parse(test.line)
			require.NoError(t, err)
			test.expected.Raw = test.line
			assert.Equal(t, test.expected, message)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		err  error
	}{
		{"empty", "", ErrMissingToken},
		{"only spaces", "    ", ErrMissingToken},
		{"bare command", "COMMAND", ErrExpectedTagsOrPrefix},
		{"bare command with params", "PRIVMSG #chan :hello", ErrExpectedTagsOrPrefix},
		{"tags after prefix", ":nick @id=1 CMD", ErrMisplacedTags},
		{"tags twice", "@a=1 @b=2 CMD", ErrMisplacedTags},
		{"only tags", "@id=123", ErrUnexpectedEndOfMessage},
		{"only tags with spaces", "@id=123   ", ErrMissingToken},
		{"only prefix", ":nick", ErrUnexpectedEndOfMessage},
		{"only prefix with spaces", ":nick  ", ErrMissingToken},
		{"tags and prefix", "@id=123 :nick", ErrUnexpectedEndOfMessage},
		{"tags and prefix with spaces", "@id=123 :nick  ", ErrMissingToken},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			message, err := Parse(test.line)
			assert.ErrorIs(t, err, test.err)
			assert.Nil(t, message)
		})
	}
}

func TestParseFirstTokenMustHaveSigil(t *testing.T) {
	for _, line := range []string{"PING", "PING :x", "001 nick :Welcome", "a b c", "x:y CMD"} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrExpectedTagsOrPrefix, line)
	}
}

func TestParseTagsOnlyFirst(t *testing.T) {
	lines := []string{
		":nick @a CMD",
		"@a @b CMD",
		":nick CMD @notatag",
	}
	_, err := Parse(lines[0])
	assert.ErrorIs(t, err, ErrMisplacedTags)
	_, err = Parse(lines[1])
	assert.ErrorIs(t, err, ErrMisplacedTags)
	// Past the command an @ is ordinary parameter text
	message, err := Parse(lines[2])
	require.NoError(t, err)
	assert.Equal(t, []string{"@notatag"}, message.Params)
}

func TestParseDoesNotCopy(t *testing.T) {
	line := "@id=123 :nick!user@host PRIVMSG #chan :hello world"
	message, err := Parse(line)
	require.NoError(t, err)

	start := uintptr(unsafe.Pointer(unsafe.StringData(line)))
	end := start + uintptr(len(line))
	for _, span := range append([]string{message.Tags, message.Prefix, message.Command}, message.Params...) {
		address := uintptr(unsafe.Pointer(unsafe.StringData(span)))
		assert.True(t, address >= start && address < end, span)
	}
}

func TestParserImplementsLineParser(t *testing.T) {
	message, err := New().Parse(":server PONG server :123")
	require.NoError(t, err)
	assert.Equal(t, "PONG", message.Command)
	assert.Equal(t, []string{"server", "123"}, message.Params)
}

func BenchmarkParse(b *testing.B) {
	line := "@badge-info=;color=#0000FF;display-name=nick;id=abc :nick!nick@nick.tmi.twitch.tv PRIVMSG #chan :hello there"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(line); err != nil {
			b.Fatal(err)
		}
	}
}
