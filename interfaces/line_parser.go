package interfaces

import "github.com/ynotnauk/go-irc/entities"

type LineParser interface {
	Parse(line string) (*entities.IrcMessage, error)
}
