package interfaces

import "github.com/ynotnauk/go-irc/entities"

type MessageHandler interface {
	HandleMessage(lineNumber int, message *entities.IrcMessage) error
}
